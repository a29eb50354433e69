package models

import (
	"reflect"
	"testing"
)

func TestParseFrequency(t *testing.T) {
	cases := []struct {
		in   string
		want Frequency
	}{
		{"Monthly", FrequencyMonthly},
		{"monthly", FrequencyMonthly},
		{"Quarterly", FrequencyQuarterly},
		{"Semi-Annual", FrequencySemiAnnual},
		{"semiannual", FrequencySemiAnnual},
		{"semi annual", FrequencySemiAnnual},
		{"Annual", FrequencyAnnual},
		{"yearly", FrequencyAnnual},
		{"", FrequencyQuarterly},
		{"whenever", FrequencyQuarterly},
	}
	for _, tc := range cases {
		if got := ParseFrequency(tc.in); got != tc.want {
			t.Errorf("ParseFrequency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPayoutMonths(t *testing.T) {
	cases := []struct {
		freq Frequency
		want []int
	}{
		{FrequencyMonthly, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{FrequencyQuarterly, []int{2, 5, 8, 11}},
		{FrequencySemiAnnual, []int{5, 11}},
		{FrequencyAnnual, []int{5}},
	}
	for _, tc := range cases {
		if got := tc.freq.PayoutMonths(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s.PayoutMonths() = %v, want %v", tc.freq, got, tc.want)
		}
		if got := tc.freq.PaymentsPerYear(); got != len(tc.want) {
			t.Errorf("%s.PaymentsPerYear() = %d, want %d", tc.freq, got, len(tc.want))
		}
	}
}

func TestParseCurrencyAndToggle(t *testing.T) {
	if ParseCurrency("krw") != CurrencyKRW {
		t.Error(`ParseCurrency("krw") != KRW`)
	}
	if ParseCurrency("") != CurrencyUSD {
		t.Error("empty currency should default to USD")
	}
	if ParseCurrency("EUR") != CurrencyUSD {
		t.Error("unknown currency should default to USD")
	}
	if CurrencyUSD.Toggle() != CurrencyKRW || CurrencyKRW.Toggle() != CurrencyUSD {
		t.Error("currency toggle is not an involution")
	}
}

func TestParseLanguageAndToggle(t *testing.T) {
	if ParseLanguage("KO") != LanguageKO {
		t.Error(`ParseLanguage("KO") != ko`)
	}
	if ParseLanguage("fr") != LanguageEN {
		t.Error("unknown language should default to en")
	}
	if LanguageEN.Toggle() != LanguageKO || LanguageKO.Toggle() != LanguageEN {
		t.Error("language toggle is not an involution")
	}
}

func TestHoldingDerivedFigures(t *testing.T) {
	h := Holding{Shares: 12.5, AvgPrice: 40, CurrentPrice: 44, DividendPerShare: 2}
	if got := h.CostBasisUSD(); got != 500 {
		t.Errorf("CostBasisUSD = %v, want 500", got)
	}
	if got := h.MarketValueUSD(); got != 550 {
		t.Errorf("MarketValueUSD = %v, want 550", got)
	}
	if got := h.AnnualDividendUSD(); got != 25 {
		t.Errorf("AnnualDividendUSD = %v, want 25", got)
	}
}

func TestMonthLabels(t *testing.T) {
	en := MonthLabels(LanguageEN)
	if en[0] != "Jan" || en[11] != "Dec" {
		t.Errorf("English labels = %v", en)
	}
	ko := MonthLabels(LanguageKO)
	if ko[0] != "1월" || ko[11] != "12월" {
		t.Errorf("Korean labels = %v", ko)
	}
}
