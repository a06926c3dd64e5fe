package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/landed-cost/internal/classification"
	"github.com/denmor86/landed-cost/internal/client"
	"github.com/denmor86/landed-cost/internal/models"
)

//go:generate mockgen -source=collaborators.go -destination=mocks/collaborators_mock.go -package=mocks

// ProductLookup - поиск карточки товара по артикулу
type ProductLookup interface {
	GetProduct(ctx context.Context, article string) (*models.ProductRecord, error)
}

// FieldInference - оценка недостающих веса и объёма по названию
type FieldInference interface {
	InferFields(ctx context.Context, name string) (*models.FieldEstimate, error)
}

// ClassificationInference - подбор кода ТН ВЭД по названию
type ClassificationInference interface {
	InferClassification(ctx context.Context, name string) (*models.TnvedData, error)
}

var ErrProductNotFound = errors.New("product not found")

// ProductService - сервис маркетплейса за ограничителем, автоматом защиты и повторами
type ProductService struct {
	Client   *client.Client
	Upstream *Upstream
}

func NewProductService(c *client.Client, u *Upstream) *ProductService {
	return &ProductService{Client: c, Upstream: u}
}

func (s *ProductService) GetProduct(ctx context.Context, article string) (*models.ProductRecord, error) {
	var resp *client.ProductResponse
	err := s.Upstream.Call(ctx, func(ctx context.Context) error {
		var err error
		resp, err = s.Client.GetProduct(ctx, article)
		return err
	})
	if errors.Is(err, client.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, article)
	}
	if err != nil {
		return nil, err
	}
	return &models.ProductRecord{
		Article:  resp.Article,
		Name:     resp.Name,
		Price:    resp.Price,
		WeightKg: resp.WeightKg,
		VolumeM3: resp.VolumeM3,
	}, nil
}

// InferenceService - сервис подбора полей и кода ТН ВЭД
type InferenceService struct {
	Client   *client.Client
	Upstream *Upstream
}

func NewInferenceService(c *client.Client, u *Upstream) *InferenceService {
	return &InferenceService{Client: c, Upstream: u}
}

func (s *InferenceService) InferFields(ctx context.Context, name string) (*models.FieldEstimate, error) {
	var resp *client.FieldsResponse
	err := s.Upstream.Call(ctx, func(ctx context.Context) error {
		var err error
		resp, err = s.Client.InferFields(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &models.FieldEstimate{WeightKg: resp.WeightKg, VolumeM3: resp.VolumeM3}, nil
}

func (s *InferenceService) InferClassification(ctx context.Context, name string) (*models.TnvedData, error) {
	var resp *client.ClassificationResponse
	err := s.Upstream.Call(ctx, func(ctx context.Context) error {
		var err error
		resp, err = s.Client.InferClassification(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := checkClassification(resp); err != nil {
		return nil, err
	}
	return &models.TnvedData{
		Code:           resp.Code,
		DutyType:       resp.DutyType,
		DutyRate:       *resp.DutyRate,
		VATRatePercent: *resp.VATRate,
	}, nil
}

// checkClassification - ответ подбора проверяется как пользовательский ввод:
// код должен содержать цифры, ставки пошлины и НДС обязательны и неотрицательны
func checkClassification(resp *client.ClassificationResponse) error {
	if classification.Inspect(resp.Code).Digits == 0 {
		return fmt.Errorf("%w: classification code %q has no digits", client.ErrMalformedResponse, resp.Code)
	}
	if resp.DutyRate == nil || resp.DutyRate.IsNegative() {
		return fmt.Errorf("%w: duty_rate is missing or negative", client.ErrMalformedResponse)
	}
	if resp.VATRate == nil || resp.VATRate.IsNegative() {
		return fmt.Errorf("%w: vat_rate is missing or negative", client.ErrMalformedResponse)
	}
	return nil
}
