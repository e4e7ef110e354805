package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconf "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"github.com/skolapp/backend/conf"
	"github.com/skolapp/backend/evalsrvc"
	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/examgen"
	"github.com/skolapp/backend/http"
	"github.com/skolapp/backend/llm"
	"github.com/skolapp/backend/ocr"
	"github.com/skolapp/backend/result"
	"github.com/skolapp/backend/rubric"
	"github.com/skolapp/backend/s3bucket"
	"github.com/skolapp/backend/sheetstore"
	"github.com/skolapp/backend/subm"
	"github.com/skolapp/backend/tutor"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	srvConf, err := conf.ReadServerConf(os.Getenv("SERVER_CONF"))
	if err != nil {
		slog.Error("failed to read server conf", "error", err)
		os.Exit(1)
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "eu-central-1"
	}

	ctx := context.Background()

	examTable := os.Getenv("DDB_EXAM_TABLE")
	if examTable == "" {
		examTable = "skolapp_exams"
	}
	examRepo, err := exam.NewDdbRepo(ctx, region, examTable)
	if err != nil {
		slog.Error("failed to create exam repo", "error", err)
		os.Exit(1)
	}

	pgConnStr, err := conf.PgConnStr(ctx)
	if err != nil {
		slog.Error("failed to resolve pg connection string", "error", err)
		os.Exit(1)
	}
	pool, err := pgxpool.New(ctx, pgConnStr)
	if err != nil {
		slog.Error("failed to create pg pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	sheetsBucket := os.Getenv("SHEETS_S3_BUCKET")
	if sheetsBucket == "" {
		slog.Error("SHEETS_S3_BUCKET is not set")
		os.Exit(1)
	}
	bucket, err := s3bucket.NewS3Bucket(region, sheetsBucket)
	if err != nil {
		slog.Error("failed to create sheets bucket", "error", err)
		os.Exit(1)
	}
	sheets := sheetstore.NewSheetStore(bucket, srvConf.OcrMaxImageDim)

	// transcripts are archived to a separate bucket when one is configured
	var archive *s3bucket.S3Bucket
	if archiveBucket := os.Getenv("ARCHIVE_S3_BUCKET"); archiveBucket != "" {
		archive, err = s3bucket.NewS3Bucket(region, archiveBucket)
		if err != nil {
			slog.Error("failed to create archive bucket", "error", err)
			os.Exit(1)
		}
	}

	llmClient, err := llm.NewFromEnv()
	if err != nil {
		slog.Error("failed to create llm client", "error", err)
		os.Exit(1)
	}
	visionModel := os.Getenv("OPENAI_VISION_MODEL")
	if visionModel == "" {
		visionModel = openai.GPT4o
	}
	textExtractor := ocr.NewVisionOcr(llmClient.Api(), visionModel, sheets)

	rubricRepo := rubric.NewPgRepo(pool)
	rubricSrvc := rubric.NewSrvc(examRepo, rubricRepo)
	evaluator := evalsrvc.NewSubjectiveEvaluator(llmClient, rubricRepo)

	// pending evaluations survive restarts on SQS; without a queue url the
	// in-process queue keeps local setups working
	var queue subm.Queue
	if queueUrl := os.Getenv("EVAL_QUEUE_URL"); queueUrl != "" {
		awsCfg, err := awsconf.LoadDefaultConfig(ctx, awsconf.WithRegion(region))
		if err != nil {
			slog.Error("failed to load aws config", "error", err)
			os.Exit(1)
		}
		queue = subm.NewSqsQueue(sqs.NewFromConfig(awsCfg), queueUrl)
	} else {
		slog.Warn("EVAL_QUEUE_URL is not set, using in-process queue")
		queue = subm.NewChanQueue(256)
	}

	mcqRepo := subm.NewPgMcqRepo(pool)
	writtenRepo := subm.NewPgWrittenRepo(pool)
	evalRepo := subm.NewPgEvalRepo(pool)
	retention := subm.NewRetentionPolicy(sheets, archive, srvConf.DeleteSheets)

	submSrvc := subm.NewSubmSrvc(
		examRepo, mcqRepo, writtenRepo, evalRepo,
		sheets, queue, textExtractor, evaluator, retention,
	)

	examGen := examgen.NewSrvc(llmClient, examRepo, rubricRepo)
	resultBldr := result.NewBuilder(examRepo, mcqRepo, writtenRepo, evalRepo)
	tutorSrvc := tutor.NewSrvc(llmClient, examRepo, srvConf.TutorTopK)

	go submSrvc.RunWorkers(ctx, srvConf.EvalWorkers)

	httpServer := http.NewHttpServer(
		examRepo, examGen, rubricSrvc, submSrvc, resultBldr, tutorSrvc,
		http.Config{
			JwtKey:      []byte(jwtKey),
			CorsOrigins: srvConf.CorsOrigins,
			MaxUploadMB: srvConf.MaxUploadMB,
		},
	)

	log.Printf("Starting server on %s", srvConf.HttpAddress)
	err = httpServer.Start(srvConf.HttpAddress)
	log.Printf("Server stopped with error: %v", err)
}
