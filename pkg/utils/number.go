package utils

import (
	"fmt"
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatPercentage formatea un porcentaje con un decimal, ej: "25.3%".
func FormatPercentage(f float64) string {
	return fmt.Sprintf("%.1f%%", f)
}

// FormatMoney redondea al entero más cercano y agrega el símbolo de pesos
// con separadores de miles, ej: "$1,234,567".
func FormatMoney(f float64) string {
	value := strconv.FormatInt(int64(math.Round(f)), 10)

	negative := false
	if len(value) > 0 && value[0] == '-' {
		negative = true
		value = value[1:]
	}

	var out []byte
	for i, digit := range []byte(value) {
		if i > 0 && (len(value)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}

	if negative {
		return "-$" + string(out)
	}
	return "$" + string(out)
}
