// Package validation checks inbound request shapes against their rule sets.
//
// Rules are declared as validate tags on the request types in domain. A check
// never panics or returns early: every violated rule ends up in the Result,
// and callers must stop when the Result is not valid.
package validation

import (
	"errors"
	"reflect"
	"regexp"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/govalues/decimal"
)

// Result is the outcome of a single check.
type Result struct {
	Request    string
	Violations []domain.Violation
}

func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Err returns a *domain.ValidationError, or nil for a valid result.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &domain.ValidationError{Request: r.Request, Violations: r.Violations}
}

func (r Result) Messages() []string {
	msgs := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

type Validator struct {
	validate *validator.Validate
}

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// decimals are compared as numbers by gt/gte
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})

	enums := map[string]validator.Func{
		"order_status": func(fl validator.FieldLevel) bool {
			s, ok := fl.Field().Interface().(domain.OrderStatus)
			return ok && s.Valid()
		},
		"payment_method": func(fl validator.FieldLevel) bool {
			m, ok := fl.Field().Interface().(domain.PaymentMethod)
			return ok && m.Valid()
		},
		"payment_status": func(fl validator.FieldLevel) bool {
			s, ok := fl.Field().Interface().(domain.PaymentStatus)
			return ok && s.Valid()
		},
	}
	for tag, fn := range enums {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, err
		}
	}

	return &Validator{validate: v}, nil
}

// Validate checks req, which must be a request struct or a pointer to one.
func (v *Validator) Validate(req any) Result {
	res := Result{Request: requestName(req)}

	err := v.validate.Struct(req)
	if err == nil {
		return res
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		res.Violations = append(res.Violations, domain.Violation{Message: err.Error()})
		return res
	}

	for _, fe := range fieldErrs {
		res.Violations = append(res.Violations, domain.Violation{
			Field:   fe.Namespace(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return res
}

func requestName(req any) string {
	t := reflect.TypeOf(req)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

var indexRe = regexp.MustCompile(`\[\d+\]`)

var messages = map[string]string{
	"IDRequest.ID": "The Id must be greater than zero.",

	"MultipleIDRequest.IDs":    "At least one Id is required.",
	"MultipleIDRequest.IDs|gt": "The Id must be greater than zero.",

	"CreateArticleRequest.Name":           "Name is required.",
	"CreateArticleRequest.Price":          "Price must be greater than zero.",
	"CreateArticlesRequest.Articles.Name":  "Name is required.",
	"CreateArticlesRequest.Articles.Price": "Price must be greater than zero.",

	"CreateOrderRequest.Lines":           "At least one article line is required.",
	"CreateOrderRequest.Lines.ArticleID": "ArticleId must be greater than zero.",
	"CreateOrderRequest.Lines.Quantity":  "Quantity cannot be negative.",

	"OrderStatusRequest.Status": "Invalid order status.",

	"CreatePaymentRequest.OrderID": "The OrderId must be greater than zero.",
	"CreatePaymentRequest.Amount":  "Amount cannot be negative.",
	"CreatePaymentRequest.Method":  "Method must be a valid one and cannot be empty.",
	"CreatePaymentRequest.Status":  "Status must be a valid one and cannot be empty.",
}

func message(fe validator.FieldError) string {
	key := indexRe.ReplaceAllString(fe.StructNamespace(), "")
	if msg, ok := messages[key+"|"+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[key]; ok {
		return msg
	}
	return fe.Error()
}
