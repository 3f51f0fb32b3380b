package health

import (
	"strconv"
	"time"
)

// BMICategory is the WHO-style bucket a BMI value falls into.
type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
	Unknown      BMICategory = "Unknown"
)

// BMI returns weight / height² rounded to two decimals. ok is false when no
// height is known.
func BMI(weightKg, heightCm float64) (bmi float64, ok bool) {
	if heightCm <= 0 {
		return 0, false
	}
	heightM := heightCm / 100
	return roundTo(weightKg/(heightM*heightM), 2), true
}

// Category buckets a BMI value.
func Category(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// CategoryOf is Category for an optional BMI.
func CategoryOf(bmi float64, ok bool) BMICategory {
	if !ok {
		return Unknown
	}
	return Category(bmi)
}

// Age returns completed years between dob and today.
func Age(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// roundTo rounds the exact value of v to places decimals, ties to even.
func roundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
