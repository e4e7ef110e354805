package conf

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ServerConf holds server tuning that is not secret and therefore lives in
// a checked-in TOML file rather than the environment. Every field has a
// default so the file is optional.
type ServerConf struct {
	HttpAddress    string   `toml:"http_address"`
	CorsOrigins    []string `toml:"cors_origins"`
	EvalWorkers    int      `toml:"eval_workers"`
	DeleteSheets   bool     `toml:"delete_sheets_after_eval"`
	MaxUploadMB    int      `toml:"max_upload_mb"`
	TutorTopK      int      `toml:"tutor_top_k"`
	OcrMaxImageDim int      `toml:"ocr_max_image_dim"`
}

func DefaultServerConf() ServerConf {
	return ServerConf{
		HttpAddress:    ":8080",
		CorsOrigins:    []string{"http://localhost:3000"},
		EvalWorkers:    4,
		DeleteSheets:   false,
		MaxUploadMB:    32,
		TutorTopK:      4,
		OcrMaxImageDim: 2000,
	}
}

// ReadServerConf loads the TOML file at path on top of the defaults.
// A missing file is not an error.
func ReadServerConf(path string) (ServerConf, error) {
	c := DefaultServerConf()
	if path == "" {
		return c, nil
	}
	body, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("failed to read server conf: %w", err)
	}
	if err := toml.Unmarshal(body, &c); err != nil {
		return c, fmt.Errorf("failed to parse server conf: %w", err)
	}
	return c, nil
}
