package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/skolapp/backend/auth"
	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/examgen"
	"github.com/skolapp/backend/result"
	"github.com/skolapp/backend/rubric"
	"github.com/skolapp/backend/subm"
	"github.com/skolapp/backend/tutor"
)

type HttpServer struct {
	examRepo    exam.Repo
	examGen     *examgen.Srvc
	rubricSrvc  *rubric.Srvc
	submSrvc    *subm.SubmSrvc
	resultBldr  *result.Builder
	tutorSrvc   *tutor.Srvc
	router      *chi.Mux
	maxUploadMB int
}

type Config struct {
	JwtKey      []byte
	CorsOrigins []string
	MaxUploadMB int
}

func NewHttpServer(
	examRepo exam.Repo,
	examGen *examgen.Srvc,
	rubricSrvc *rubric.Srvc,
	submSrvc *subm.SubmSrvc,
	resultBldr *result.Builder,
	tutorSrvc *tutor.Srvc,
	conf Config,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("skolapp", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   conf.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(conf.JwtKey))

	maxUploadMB := conf.MaxUploadMB
	if maxUploadMB < 1 {
		maxUploadMB = 32
	}

	server := &HttpServer{
		examRepo:    examRepo,
		examGen:     examGen,
		rubricSrvc:  rubricSrvc,
		submSrvc:    submSrvc,
		resultBldr:  resultBldr,
		tutorSrvc:   tutorSrvc,
		router:      router,
		maxUploadMB: maxUploadMB,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// Handler exposes the router, mostly for tests.
func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/api/exam/generate", httpserver.generateExam)
	r.Get("/api/exam/{examId}", httpserver.getExam)
	r.Post("/api/exam/rubric", httpserver.putRubric)
	r.Post("/api/exam/submit-mcq", httpserver.submitMcq)
	r.Post("/api/exam/upload-written", httpserver.uploadWritten)
	r.Get("/api/exam/submission-status/{submissionId}", httpserver.submissionStatus)
	r.Get("/api/exam/result/{examId}/{studentId}", httpserver.getResult)
	r.Post("/api/tutor/chat", httpserver.tutorChat)
}
