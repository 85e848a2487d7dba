package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// IntOrZero trata campo não informado (nil) como zero para fins de soma
func IntOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// FloatOrZero trata campo não informado (nil) como zero para fins de soma
func FloatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// IntPtr devolve um ponteiro para o valor informado
func IntPtr(v int) *int {
	return &v
}

// FloatPtr devolve um ponteiro para o valor informado
func FloatPtr(v float64) *float64 {
	return &v
}

// StringPtr devolve um ponteiro para o valor informado
func StringPtr(v string) *string {
	return &v
}
