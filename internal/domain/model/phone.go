package model

import "io"

const MinRemainingPlanMinutes = 1.0

// Phone is an iPhone-style talking device.
type Phone struct {
	purpose              Purpose
	planCarrier          string
	remainingPlanMinutes float64
}

func NewPhone(remainingPlanMinutes float64, planCarrier string) (Phone, error) {
	if err := validatePhone(remainingPlanMinutes, planCarrier); err != nil {
		return Phone{}, err
	}

	return Phone{
		purpose:              PurposeTalking,
		planCarrier:          planCarrier,
		remainingPlanMinutes: remainingPlanMinutes,
	}, nil
}

func validatePhone(remainingPlanMinutes float64, planCarrier string) error {
	// In reality the carrier should be checked against a list of known carriers.
	return validate(
		atLeast(
			FieldRemainingPlanMinutes,
			remainingPlanMinutes,
			MinRemainingPlanMinutes,
			"You must have more than "+formatFloat(MinRemainingPlanMinutes)+" minutes on your plan",
		),
		notBlank(FieldPlanCarrier, planCarrier, "Carrier must not be null or blank"),
	)
}

func (p Phone) Kind() Kind                     { return KindPhone }
func (p Phone) Purpose() string                { return p.purpose.String() }
func (p Phone) PlanCarrier() string            { return p.planCarrier }
func (p Phone) RemainingPlanMinutes() float64  { return p.remainingPlanMinutes }
func (p Phone) String() string                 { return p.Details() }
func (p Phone) PrintDetails(w io.Writer) error { return printDetails(w, p) }

// Equal compares remaining minutes exactly, with no tolerance.
func (p Phone) Equal(o Phone) bool {
	return p.remainingPlanMinutes == o.remainingPlanMinutes
}

func (p Phone) Hash() uint64 {
	return hashFloat64(p.remainingPlanMinutes)
}

func (p Phone) Details() string {
	return p.details().String()
}

func (p Phone) details() *detailsBuilder {
	return newDetailsBuilder(p.purpose).
		line("Remaining Plan Minutes", formatFloat(p.remainingPlanMinutes)).
		line("Plan Carrier", p.planCarrier)
}
