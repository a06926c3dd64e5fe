package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/denmor86/landed-cost/internal/calculator"
	"github.com/denmor86/landed-cost/internal/classification"
	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/models"
	"github.com/denmor86/landed-cost/internal/storage"
	"github.com/shopspring/decimal"
)

// Pipeline - обработка задачи расчёта: товар, недостающие поля, подбор кода,
// проверка красной зоны и расчёт стоимости. Каждая смена статуса идёт через compare-and-set.
type Pipeline struct {
	Jobs       storage.JobsStorage
	Products   ProductLookup
	Fields     FieldInference
	Classifier ClassificationInference
	Rules      *classification.Source
	Calculator *CalculatorService
	ResultTTL  time.Duration
	Now        func() time.Time
}

func NewPipeline(jobs storage.JobsStorage, products ProductLookup, fields FieldInference,
	classifier ClassificationInference, rules *classification.Source, calc *CalculatorService, ttl time.Duration) *Pipeline {
	return &Pipeline{
		Jobs:       jobs,
		Products:   products,
		Fields:     fields,
		Classifier: classifier,
		Rules:      rules,
		Calculator: calc,
		ResultTTL:  ttl,
		Now:        time.Now,
	}
}

type jobRun struct {
	job     models.CalculationJob
	status  models.JobStatus
	product models.ProductRecord
	result  models.JobResult
}

// Process - доводит захваченную задачу до DONE или FAILED
func (p *Pipeline) Process(ctx context.Context, job models.CalculationJob) error {
	run := &jobRun{job: job, status: job.Status}
	err := p.execute(ctx, run)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		// задачу подберёт восстановление зависших
		logger.Warn("Job interrupted", "job_id", job.ID, "status", run.status, "error", err)
		return ctx.Err()
	}
	switch {
	case errors.Is(err, storage.ErrStaleStatus), errors.Is(err, storage.ErrJobFinished), errors.Is(err, storage.ErrJobNotFound):
		logger.Warn("Job changed concurrently, dropping", "job_id", job.ID, "status", run.status, "error", err)
		return nil
	case errors.Is(err, storage.ErrCancelRequested):
		err = models.NewCalcError(models.KindCancelled, "", "cancelled by client at %s", run.status)
	}
	return p.fail(ctx, run, err)
}

func (p *Pipeline) execute(ctx context.Context, run *jobRun) error {
	if run.status == models.StatusQueued {
		if err := p.advance(ctx, run, models.StatusFetching); err != nil {
			return err
		}
	}
	if run.status != models.StatusFetching {
		return fmt.Errorf("%w: job %s picked up in status %s", storage.ErrInvalidTransition, run.job.ID, run.status)
	}
	if err := p.fetch(ctx, run); err != nil {
		return err
	}
	if err := p.completeFields(ctx, run); err != nil {
		return err
	}

	if err := p.advance(ctx, run, models.StatusClassifying); err != nil {
		return err
	}
	tnved, err := p.Classifier.InferClassification(ctx, run.product.Name)
	if err != nil {
		return err
	}
	run.result.Classification = tnved

	if err := p.advance(ctx, run, models.StatusRiskChecked); err != nil {
		return err
	}
	decision := p.Rules.Check(tnved.Code)
	run.result.Decision = &decision
	run.result.Warnings = append(run.result.Warnings, decision.Warnings...)
	switch decision.Decision {
	case models.DecisionBlock:
		run.result.Blocked = true
		return p.finish(ctx, run)
	case models.DecisionRisk:
		run.result.Warnings = append(run.result.Warnings, "classification code is in the risk zone: "+deref(decision.Reason))
	}

	if err := p.advance(ctx, run, models.StatusComputing); err != nil {
		return err
	}
	if err := p.compute(run); err != nil {
		return err
	}
	return p.finish(ctx, run)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (p *Pipeline) advance(ctx context.Context, run *jobRun, to models.JobStatus) error {
	if err := p.Jobs.TransitionStatus(ctx, run.job.ID, run.status, to); err != nil {
		return err
	}
	logger.Info("Job status changed", "job_id", run.job.ID, "from", run.status, "to", to)
	run.status = to
	return nil
}

func (p *Pipeline) fetch(ctx context.Context, run *jobRun) error {
	payload := run.job.Payload
	var product models.ProductRecord
	if payload.Article != "" {
		fetched, err := p.Products.GetProduct(ctx, payload.Article)
		if errors.Is(err, ErrProductNotFound) {
			return models.NewCalcError(models.KindValidation, "article", "product %s not found", payload.Article)
		}
		if err != nil {
			return err
		}
		product = *fetched
	}
	product = product.Merge(payload.Product)
	if product.Article == "" {
		product.Article = payload.Article
	}

	errs := &models.CalcError{}
	if strings.TrimSpace(product.Name) == "" {
		errs.Add(models.KindValidation, "name", "product name is required")
	}
	if !product.Price.Value.IsPositive() {
		errs.Add(models.KindValidation, "goods_value", "product price must be > 0")
	} else if !product.Price.Currency.Supported() {
		errs.Add(models.KindUnsupportedCurrency, "currency", fmt.Sprintf("unsupported currency %q", product.Price.Currency))
	}
	run.product = product
	return errs.ErrOrNil()
}

// completeFields - недостающие вес и объём запрашиваются у сервиса подбора,
// ответ проверяется так же, как пользовательский ввод
func (p *Pipeline) completeFields(ctx context.Context, run *jobRun) error {
	missing := run.product.MissingFields()
	if len(missing) == 0 {
		return nil
	}
	if err := p.advance(ctx, run, models.StatusAwaitingFields); err != nil {
		return err
	}
	estimate, err := p.Fields.InferFields(ctx, run.product.Name)
	if err != nil {
		return err
	}

	errs := &models.CalcError{}
	for _, field := range missing {
		var value *decimal.Decimal
		switch field {
		case models.FieldWeight:
			value = estimate.WeightKg
		case models.FieldVolume:
			value = estimate.VolumeM3
		}
		switch {
		case value == nil:
			errs.Add(models.KindValidation, field, "field is missing and could not be inferred")
		case !value.IsPositive():
			errs.Add(models.KindValidation, field, fmt.Sprintf("inferred value %s must be > 0", value))
		default:
			v := *value
			if field == models.FieldWeight {
				run.product.WeightKg = &v
			} else {
				run.product.VolumeM3 = &v
			}
			run.result.Warnings = append(run.result.Warnings, field+" is an estimate inferred from the product name")
		}
	}
	return errs.ErrOrNil()
}

func (p *Pipeline) compute(run *jobRun) error {
	payload := run.job.Payload
	rates := p.Calculator.rates(payload.Rates)
	if err := rates.Validate(); err != nil {
		return err
	}

	qty := 1
	if payload.QuantityUnits != nil {
		qty = *payload.QuantityUnits
	}
	// вес, объём и цена в карточке указаны за единицу товара
	q := decimal.NewFromInt(int64(qty))
	weight := run.product.WeightKg.Mul(q)
	volume := run.product.VolumeM3.Mul(q)
	goods := run.product.Price.Mul(q)

	if payload.Path.IncludesCargo() {
		res, err := p.Calculator.Cargo(models.CargoRequest{
			WeightKg:      weight,
			VolumeM3:      volume,
			QuantityUnits: payload.QuantityUnits,
			GoodsValue:    goods,
			Rates:         &rates,
		})
		if err != nil {
			return err
		}
		run.result.Cargo = &res
	}

	if payload.Path.IncludesWhite() {
		goodsCNY := goods.Value
		if goods.Currency != models.CurrencyCNY {
			usd, err := calculator.ToBase(goods, rates)
			if err != nil {
				return err
			}
			goodsCNY = usd.Mul(rates.USDToCNY)
		}
		res, err := p.Calculator.White(models.WhiteRequest{
			WeightKg:      weight,
			QuantityUnits: qty,
			GoodsValueCNY: goodsCNY,
			DutySchedule:  run.result.Classification.Schedule(),
			Rates:         &rates,
		})
		if err != nil {
			return err
		}
		run.result.White = &res
		run.result.Warnings = append(run.result.Warnings, res.Warnings...)
	}
	return nil
}

func (p *Pipeline) expiry() time.Time {
	return p.Now().Add(p.ResultTTL)
}

func (p *Pipeline) finish(ctx context.Context, run *jobRun) error {
	run.result.OK = true
	product := run.product
	run.result.Product = &product
	if err := p.Jobs.FinishJob(ctx, run.job.ID, run.status, models.StatusDone, run.result, p.expiry()); err != nil {
		return err
	}
	logger.Info("Job status changed", "job_id", run.job.ID, "from", run.status, "to", models.StatusDone, "blocked", run.result.Blocked)
	run.status = models.StatusDone
	return nil
}

func (p *Pipeline) fail(ctx context.Context, run *jobRun, cause error) error {
	result := models.OutcomeResult(cause)
	result.Warnings = run.result.Warnings
	if err := p.Jobs.FinishJob(ctx, run.job.ID, run.status, models.StatusFailed, result, p.expiry()); err != nil {
		logger.Error("Failed to store job failure", "job_id", run.job.ID, "status", run.status, "cause", cause.Error(), "error", err)
		return err
	}
	logger.Info("Job status changed", "job_id", run.job.ID, "from", run.status, "to", models.StatusFailed,
		"cause", cause.Error(), "retryable", result.Retryable)
	run.status = models.StatusFailed
	return nil
}
