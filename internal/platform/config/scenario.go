package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Scenario is the validated set of scalar inputs for one estimation:
// macro parameters, force weights and an optional default history source.
// It is built once, before any computation runs.
type Scenario struct {
	Macro   domain.MacroParameters
	Weights domain.ForceWeights
	Strict  bool
	History string
}

type scenarioFile struct {
	Macro   macroFile          `mapstructure:"macro"`
	Weights map[string]float64 `mapstructure:"weights" validate:"required,min=1,dive,keys,force_name,endkeys,finite,gte=0"`
	Strict  bool               `mapstructure:"strict"`
	History string             `mapstructure:"history"`
}

type macroFile struct {
	ExchangeRateChange float64 `mapstructure:"exchange_rate_change" validate:"finite"`
	GDPGrowth          float64 `mapstructure:"gdp_growth" validate:"finite"`
	Inflation          float64 `mapstructure:"inflation" validate:"finite"`
	InterestRate       float64 `mapstructure:"interest_rate" validate:"finite"`
	GovernmentPolicy   string  `mapstructure:"government_policy"`
}

// EnvPrefix prefixes environment overrides of scenario keys,
// e.g. GROWTH_MACRO_INFLATION=3.2 or GROWTH_WEIGHTS_EXCHANGE_RATE_EFFECT=0.4.
const EnvPrefix = "GROWTH"

// NewValidator returns a validator with the scenario rules registered.
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("finite", validateFinite)
	_ = validate.RegisterValidation("force_name", validateForceName)
	validate.RegisterStructValidation(validateWeightSum, scenarioFile{})
	return validate
}

func validateFinite(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Float64 && fl.Field().Kind() != reflect.Float32 {
		return false
	}
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateForceName(fl validator.FieldLevel) bool {
	return domain.ForceName(fl.Field().String()).IsValid()
}

func validateWeightSum(sl validator.StructLevel) {
	s := sl.Current().Interface().(scenarioFile)
	var total float64
	for _, w := range s.Weights {
		total += w
	}
	if len(s.Weights) > 0 && total == 0 {
		sl.ReportError(s.Weights, "Weights", "weights", "nonzero_sum", "")
	}
}

// LoadScenario reads a scenario from a YAML, TOML or JSON file, applies
// GROWTH_* environment overrides and validates it.
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading scenario %s: %v", apperrors.ErrValidation, path, err)
	}
	return ScenarioFromViper(v)
}

// ScenarioFromViper decodes and validates a scenario from an already loaded viper instance.
func ScenarioFromViper(v *viper.Viper) (*Scenario, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindScenarioEnv(v)

	var raw scenarioFile
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding scenario: %v", apperrors.ErrValidation, err)
	}
	return raw.toScenario(NewValidator())
}

// scenarioKeys are the scalar keys that can be set from the environment
// even when the file leaves them out.
var scenarioKeys = []string{
	"strict",
	"history",
	"macro.exchange_rate_change",
	"macro.gdp_growth",
	"macro.inflation",
	"macro.interest_rate",
	"macro.government_policy",
}

// bindScenarioEnv registers every scenario key with viper. AutomaticEnv alone
// only consults the environment for keys already present in the file.
func bindScenarioEnv(v *viper.Viper) {
	for _, key := range scenarioKeys {
		_ = v.BindEnv(key)
	}
	for _, force := range domain.AllForces {
		_ = v.BindEnv("weights." + string(force))
	}
}

func (raw scenarioFile) toScenario(validate *validator.Validate) (*Scenario, error) {
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, describeValidationError(err))
	}

	weights := make(domain.ForceWeights, len(raw.Weights))
	for name, w := range raw.Weights {
		weights[domain.ForceName(name)] = w
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	return &Scenario{
		Macro: domain.MacroParameters{
			ExchangeRateChange: raw.Macro.ExchangeRateChange,
			GDPGrowth:          raw.Macro.GDPGrowth,
			Inflation:          raw.Macro.Inflation,
			InterestRate:       raw.Macro.InterestRate,
			GovernmentPolicy:   raw.Macro.GovernmentPolicy,
		},
		Weights: weights,
		Strict:  raw.Strict,
		History: raw.History,
	}, nil
}

func describeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "nonzero_sum":
			msgs = append(msgs, "force weights must not sum to zero")
		case "force_name":
			msgs = append(msgs, fmt.Sprintf("unknown force %q", fe.Value()))
		case "finite":
			msgs = append(msgs, fmt.Sprintf("%s must be a finite number", fe.Namespace()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
