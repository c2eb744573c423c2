package predictionService

import (
	"context"
	"mime/multipart"

	"DentScanGolang/internal/api/prediction"
	predictionRepository "DentScanGolang/internal/api/prediction/repository"
	patientService "DentScanGolang/internal/api/patient/service"
	"DentScanGolang/internal/entity"
	"DentScanGolang/pkg/gemini"
	"DentScanGolang/pkg/roboflow"
	"DentScanGolang/pkg/s3"
	"DentScanGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

// QuotaConsumer is the billing-side hook: it burns one prediction from the
// doctor's active subscription, or returns a payment-required error.
type QuotaConsumer interface {
	ConsumePredictionQuota(c context.Context, doctorID string) error
}

type PredictionService interface {
	Prediction() PredictionDomain
	Legend() LegendDomain
	GetRepository() predictionRepository.Repository
}

type PredictionDomain interface {
	UploadXray(c context.Context, doctor entity.UserLoginData, patientID string, file *multipart.FileHeader) (prediction.UploadResponse, error)
	RunPrediction(c context.Context, doctor entity.UserLoginData, predictionID string, withNote bool) (prediction.PredictionResponse, error)
	GetPrediction(c context.Context, doctor entity.UserLoginData, predictionID string) (prediction.PredictionResponse, error)
	ListPredictions(c context.Context, doctor entity.UserLoginData, patientID string) (prediction.PredictionListResponse, error)
	DeletePrediction(c context.Context, doctor entity.UserLoginData, predictionID string) error
}

type LegendDomain interface {
	ToggleLegend(c context.Context, doctor entity.UserLoginData, predictionID string, legendID string, included bool) (prediction.PredictionResponse, error)
}

type predictionService struct {
	log            *logrus.Logger
	predictionRepo predictionRepository.Repository
	patientService patientService.PatientService
	roboflowClient roboflow.IRoboflow
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	quotaConsumer  QuotaConsumer
	utils          utils.IUtils

	predictionDomain PredictionDomain
	legendDomain     LegendDomain
}

func (p *predictionService) Prediction() PredictionDomain {
	return p.predictionDomain
}

func (p *predictionService) Legend() LegendDomain {
	return p.legendDomain
}

func (p *predictionService) GetRepository() predictionRepository.Repository {
	return p.predictionRepo
}

type predictionDomainImpl struct {
	log            *logrus.Logger
	repo           predictionRepository.Repository
	patientService patientService.PatientService
	roboflowClient roboflow.IRoboflow
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	quotaConsumer  QuotaConsumer
	utils          utils.IUtils
}

type legendDomainImpl struct {
	log      *logrus.Logger
	repo     predictionRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(log *logrus.Logger,
	predictionRepo predictionRepository.Repository,
	patientSvc patientService.PatientService,
	roboflowClient roboflow.IRoboflow,
	geminiClient gemini.IGemini,
	s3Client s3.ItfS3,
	quotaConsumer QuotaConsumer,
	utils utils.IUtils,
) PredictionService {
	return &predictionService{
		log:            log,
		predictionRepo: predictionRepo,
		patientService: patientSvc,
		roboflowClient: roboflowClient,
		geminiClient:   geminiClient,
		s3Client:       s3Client,
		quotaConsumer:  quotaConsumer,
		utils:          utils,

		predictionDomain: &predictionDomainImpl{
			log:            log,
			repo:           predictionRepo,
			patientService: patientSvc,
			roboflowClient: roboflowClient,
			geminiClient:   geminiClient,
			s3Client:       s3Client,
			quotaConsumer:  quotaConsumer,
			utils:          utils,
		},
		legendDomain: &legendDomainImpl{log: log, repo: predictionRepo, s3Client: s3Client, utils: utils},
	}
}
