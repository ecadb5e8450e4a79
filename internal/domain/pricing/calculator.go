// Package pricing computes estimate and quotation totals. All functions are pure;
// arithmetic runs on decimals and every monetary output is rounded to 2 places.
package pricing

import (
	"fmt"
	"strings"

	"dealflow/internal/domain/domainerr"
	"dealflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EstimateResult is the output of EstimateTotals.
type EstimateResult struct {
	Questions       []entities.AnsweredQuestion
	AreaSqft        float64
	BaseAmount      float64
	EstimatedAmount float64
}

// EstimateTotals prices the answered questions of a service request.
//
// The single area answer provides the total area. It is charged at baseUnit per
// area unit and feeds per-area priced options; it never contributes an amount of
// its own. Questions excluded from the estimate are kept with a zero amount.
func EstimateTotals(questions []entities.AnsweredQuestion, baseUnit float64) (EstimateResult, error) {
	verr := &domainerr.ValidationError{}
	if baseUnit < 0 {
		verr.Add("base_estimation_value_unit", "must not be negative")
	}

	area := decimal.Zero
	areaCount := 0
	for i, q := range questions {
		if !isAreaQuestion(q) {
			continue
		}
		areaCount++
		if q.AreaValue <= 0 {
			verr.Add(fmt.Sprintf("questions[%d].area_value", i), "must be greater than zero")
			continue
		}
		area = decimal.NewFromFloat(q.AreaValue)
	}
	switch {
	case areaCount == 0:
		verr.Add("questions", "exactly one area question is required")
	case areaCount > 1:
		verr.Add("questions", "only one area question is allowed")
	}

	out := make([]entities.AnsweredQuestion, len(questions))
	sum := decimal.Zero
	for i, q := range questions {
		field := fmt.Sprintf("questions[%d]", i)
		q.CalculatedAmount = 0
		out[i] = q

		if isAreaQuestion(q) {
			continue
		}
		switch q.Type {
		case entities.QuestionTypeYesOrNo, entities.QuestionTypeOptions:
		default:
			verr.Addf(field+".type", "unknown question type %q", q.Type)
			continue
		}
		if !q.IncludeInEstimate {
			continue
		}
		if q.SelectedOption == nil {
			verr.Add(field+".selected_option", "is required")
			continue
		}
		if q.Type == entities.QuestionTypeYesOrNo && !isYes(q.SelectedOption.Title) {
			continue
		}
		amount, err := optionAmount(*q.SelectedOption, area)
		if err != nil {
			verr.Add(field+".selected_option", err.Error())
			continue
		}
		out[i].CalculatedAmount = amount.InexactFloat64()
		sum = sum.Add(amount)
	}

	if err := verr.Err(); err != nil {
		return EstimateResult{}, err
	}

	base := decimal.NewFromFloat(baseUnit).Mul(area).Round(2)
	return EstimateResult{
		Questions:       out,
		AreaSqft:        area.InexactFloat64(),
		BaseAmount:      base.InexactFloat64(),
		EstimatedAmount: base.Add(sum).Round(2).InexactFloat64(),
	}, nil
}

func isAreaQuestion(q entities.AnsweredQuestion) bool {
	return q.AreaQuestion || q.Type == entities.QuestionTypeArea
}

func isYes(title string) bool {
	return strings.EqualFold(strings.TrimSpace(title), "yes")
}

func optionAmount(opt entities.QuestionOption, area decimal.Decimal) (decimal.Decimal, error) {
	if opt.Value < 0 {
		return decimal.Zero, fmt.Errorf("value must not be negative")
	}
	value := decimal.NewFromFloat(opt.Value)
	switch strings.ToLower(strings.TrimSpace(opt.ValueSubType)) {
	case "", entities.ValueSubTypeFlat:
		return value.Round(2), nil
	case entities.ValueSubTypePerSqft, entities.ValueSubTypePerSqm:
		return value.Mul(area).Round(2), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown value_sub_type %q", opt.ValueSubType)
	}
}

// Discount is the output of ApplyDiscount.
type Discount struct {
	Price           float64
	DiscountPercent float64
	DiscountAmount  float64
	GrandTotal      float64
}

// ApplyDiscount applies a freelancer or supervisor discount to a base price.
func ApplyDiscount(price, discountPercent float64) (Discount, error) {
	verr := &domainerr.ValidationError{}
	if price < 0 {
		verr.Add("price", "must not be negative")
	}
	if discountPercent < 0 || discountPercent > 100 {
		verr.Add("discount_percent", "must be between 0 and 100")
	}
	if err := verr.Err(); err != nil {
		return Discount{}, err
	}

	p := decimal.NewFromFloat(price)
	amount := p.Mul(decimal.NewFromFloat(discountPercent)).Div(hundred).Round(2)
	total := p.Sub(amount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Discount{
		Price:           p.Round(2).InexactFloat64(),
		DiscountPercent: discountPercent,
		DiscountAmount:  amount.InexactFloat64(),
		GrandTotal:      total.Round(2).InexactFloat64(),
	}, nil
}

// Margin is the output of ApplyMargin.
type Margin struct {
	Price         float64
	MarginType    entities.MarginType
	MarginPercent float64
	MarginAmount  float64
	NewPrice      float64
}

// ApplyMargin adds a supervisor or platform markup on top of price. For
// percentage margins marginAmount is ignored; for amount margins marginPercent
// is ignored and reported as 0.
func ApplyMargin(price float64, marginType entities.MarginType, marginPercent, marginAmount float64) (Margin, error) {
	verr := &domainerr.ValidationError{}
	if price < 0 {
		verr.Add("price", "must not be negative")
	}
	switch marginType {
	case entities.MarginTypePercentage:
		if marginPercent < 0 || marginPercent > 100 {
			verr.Add("margin_percent", "must be between 0 and 100")
		}
	case entities.MarginTypeAmount:
		if marginAmount < 0 {
			verr.Add("margin_amount", "must not be negative")
		}
	default:
		verr.Addf("margin_type", "must be %q or %q", entities.MarginTypePercentage, entities.MarginTypeAmount)
	}
	if err := verr.Err(); err != nil {
		return Margin{}, err
	}

	p := decimal.NewFromFloat(price)
	var amount decimal.Decimal
	pct := 0.0
	if marginType == entities.MarginTypePercentage {
		pct = marginPercent
		amount = p.Mul(decimal.NewFromFloat(marginPercent)).Div(hundred).Round(2)
	} else {
		amount = decimal.NewFromFloat(marginAmount).Round(2)
	}

	return Margin{
		Price:         p.Round(2).InexactFloat64(),
		MarginType:    marginType,
		MarginPercent: pct,
		MarginAmount:  amount.InexactFloat64(),
		NewPrice:      p.Add(amount).Round(2).InexactFloat64(),
	}, nil
}
