package main

import (
	"context"
	"time"

	"github.com/Makanak1/Job-Board-Platform/internal/config"
	"github.com/Makanak1/Job-Board-Platform/jobboard/account/accountapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/account/accountinfra"
	"github.com/Makanak1/Job-Board-Platform/jobboard/account/accountsrv"
	"github.com/Makanak1/Job-Board-Platform/jobboard/application/applicationapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/application/applicationinfra"
	"github.com/Makanak1/Job-Board-Platform/jobboard/application/applicationsrv"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate/candidateapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate/candidateinfra"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate/candidatesrv"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer/employerapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer/employerinfra"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer/employersrv"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job/jobapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job/jobinfra"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job/jobsrv"
	"github.com/Makanak1/Job-Board-Platform/jobboard/notification/notificationapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/notification/notificationinfra"
	"github.com/Makanak1/Job-Board-Platform/jobboard/notification/notificationsrv"
	"github.com/Makanak1/Job-Board-Platform/jobboard/notification/worker"
	"github.com/Makanak1/Job-Board-Platform/jobboard/report/reportapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/report/reportinfra"
	"github.com/Makanak1/Job-Board-Platform/jobboard/report/reportsrv"
	"github.com/Makanak1/Job-Board-Platform/pkg/fsx"
	"github.com/Makanak1/Job-Board-Platform/pkg/fsx/fsxs3"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/logx"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem

	// Services
	TokenService        *auth.TokenService
	AccountService      *accountsrv.AccountService
	EmployerService     *employersrv.EmployerService
	CandidateService    *candidatesrv.CandidateService
	JobService          *jobsrv.JobService
	ApplicationService  *applicationsrv.ApplicationService
	NotificationService *notificationsrv.NotificationService
	ReportService       *reportsrv.ReportService

	// Background processing
	EmailWorker *worker.EmailWorker

	// API Handlers
	AccountHandlers      *accountapi.Handlers
	EmployerHandlers     *employerapi.Handlers
	CandidateHandlers    *candidateapi.Handlers
	JobHandlers          *jobapi.Handlers
	ApplicationHandlers  *applicationapi.Handlers
	NotificationHandlers *notificationapi.Handlers
	ReportHandlers       *reportapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	c.initHandlers()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	db, err := sqlx.Connect("postgres", c.Config.DB.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if err := c.Redis.Ping(context.Background()).Err(); err != nil {
		logx.Fatalf("Failed to connect to redis: %v", err)
	}

	// 3. S3 File Storage
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(c.Config.S3.Region),
	)
	if err != nil {
		logx.Fatalf("Failed to load AWS config: %v", err)
	}
	s3Client := s3.NewFromConfig(awsCfg)
	c.FileSystem = fsxs3.NewS3FileSystem(s3Client, c.Config.S3.Bucket, c.Config.S3.Prefix)

	// 4. Token Service
	c.TokenService = auth.NewTokenService(
		c.Config.JWT.Secret,
		c.Config.JWT.AccessTTL,
		c.Config.JWT.RefreshTTL,
		c.Config.JWT.Issuer,
	)
}

func (c *Container) initServices() {
	// Repositories
	userRepo := accountinfra.NewPostgresUserRepository(c.DB)
	employerRepo := employerinfra.NewPostgresEmployerRepository(c.DB)
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	resumeRepo := candidateinfra.NewPostgresResumeRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	notificationRepo := notificationinfra.NewPostgresNotificationRepository(c.DB)
	reportReader := reportinfra.NewPostgresReportReader(c.DB)

	hasher := accountinfra.NewBcryptPasswordHasher(0)

	// Email delivery pipeline
	emailQueue := notificationinfra.NewRedisEmailQueue(c.Redis, c.Config.Worker.EmailQueue)
	mailer := notificationinfra.NewSMTPMailer(
		c.Config.SMTP.Host,
		c.Config.SMTP.Port,
		c.Config.SMTP.Username,
		c.Config.SMTP.Password,
		c.Config.SMTP.From,
	)
	c.EmailWorker = worker.NewEmailWorker(
		emailQueue,
		mailer,
		c.Config.Worker.EmailWorkers,
		c.Config.Worker.EmailMaxAttempts,
	)

	// Domain services
	c.AccountService = accountsrv.NewAccountService(userRepo, candidateRepo, employerRepo, hasher, c.TokenService)
	c.EmployerService = employersrv.NewEmployerService(employerRepo, jobRepo, applicationRepo)
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo, resumeRepo, applicationRepo, c.FileSystem)
	c.JobService = jobsrv.NewJobService(jobRepo, employerRepo)

	c.NotificationService = notificationsrv.NewNotificationService(
		notificationRepo,
		emailQueue,
		userRepo,
		jobRepo,
		employerRepo,
		candidateRepo,
	)

	c.ApplicationService = applicationsrv.NewApplicationService(
		applicationRepo,
		jobRepo,
		candidateRepo,
		employerRepo,
		resumeRepo,
		c.NotificationService,
	)

	c.ReportService = reportsrv.NewReportService(reportReader)
}

func (c *Container) initHandlers() {
	c.AccountHandlers = accountapi.NewHandlers(c.AccountService)
	c.EmployerHandlers = employerapi.NewHandlers(c.EmployerService)
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.NotificationHandlers = notificationapi.NewHandlers(c.NotificationService)
	c.ReportHandlers = reportapi.NewHandlers(c.ReportService)
}
