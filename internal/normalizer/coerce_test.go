package normalizer

import "testing"

func newTestCoercer() *Coercer {
	return NewCoercer(1957, 2023, true)
}

func TestCoercer_Year(t *testing.T) {
	c := newTestCoercer()

	cases := []struct {
		name string
		raw  string
		want int // 0 means absent
	}{
		{"native dataset format", "Fri Aug 07, 2020 05:12 UTC", 2020},
		{"date only", "Tue Feb 18, 2020", 2020},
		{"iso date", "2018-01-17", 2018},
		{"iso datetime", "2018-01-17 03:59:00", 2018},
		{"verbose", "January 17, 2018", 2018},
		{"slash date", "1/17/2018", 2018},
		{"bare year", "1969", 1969},
		{"empty", "", 0},
		{"garbage", "not a date", 0},
		{"before window", "Mon Oct 01, 1956 00:00 UTC", 0},
		{"after window", "2150-01-01", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Year(tc.raw)

			if tc.want == 0 {
				if got != nil {
					t.Errorf("Year(%q) = %d, want absent", tc.raw, *got)
				}

				return
			}

			if got == nil {
				t.Fatalf("Year(%q) = absent, want %d", tc.raw, tc.want)
			}

			if *got != tc.want {
				t.Errorf("Year(%q) = %d, want %d", tc.raw, *got, tc.want)
			}
		})
	}
}

func TestCoercer_SuccessFlag(t *testing.T) {
	c := newTestCoercer()

	cases := []struct {
		raw     string
		want    bool
		present bool
	}{
		{"Success", true, true},
		{"successful", true, true},
		{"Partial Failure", true, true},
		{"  SUCCESS  ", true, true},
		{"Failure", false, true},
		{"Prelaunch Failure", false, true},
		{"", false, false},
		{"   ", false, false},
	}

	for _, tc := range cases {
		flag, _ := c.SuccessFlag(tc.raw)

		if !tc.present {
			if flag != nil {
				t.Errorf("SuccessFlag(%q) = %v, want absent", tc.raw, *flag)
			}

			continue
		}

		if flag == nil {
			t.Errorf("SuccessFlag(%q) = absent, want %v", tc.raw, tc.want)

			continue
		}

		if *flag != tc.want {
			t.Errorf("SuccessFlag(%q) = %v, want %v", tc.raw, *flag, tc.want)
		}
	}
}

func TestCoercer_SuccessFlag_LowersAndTrims(t *testing.T) {
	c := newTestCoercer()

	_, status := c.SuccessFlag("  Partial Failure ")
	if status != "partial failure" {
		t.Errorf("status raw = %q, want %q", status, "partial failure")
	}
}

func TestCoercer_SuccessFlag_PartialFailurePolicyOff(t *testing.T) {
	c := NewCoercer(1957, 2023, false)

	flag, _ := c.SuccessFlag("Partial Failure")
	if flag == nil {
		t.Fatal("flag absent, want present")
	}

	if *flag {
		t.Error("partial failure counted as success with the policy disabled")
	}
}

func TestCoercer_Cost(t *testing.T) {
	c := newTestCoercer()

	cases := []struct {
		name string
		raw  string
		want float64 // negative means absent
	}{
		{"dollar million", "$62 million", 62e6},
		{"attached M", "$62M", 62e6},
		{"attached lowercase b", "1.1b", 1.1e9},
		{"spaced billion", "$1.2 billion", 1.2e9},
		{"separate M token", "450 M", 450e6},
		{"plain number", "48500000", 48.5e6},
		{"thousands separators", "$62,000,000", 62e6},
		{"decimal", "64.68 million", 64.68 * 1e6},
		{"empty", "", -1},
		{"currency only", "$", -1},
		{"garbage", "TBD", -1},
		{"unit is not whole token", "62 monthly", -1},
		{"unit inside word", "62 membrane", -1},
		{"negative", "-5 million", -1},
		{"trailing residue", "62 million usd", -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Cost(tc.raw)

			if tc.want < 0 {
				if got != nil {
					t.Errorf("Cost(%q) = %f, want absent", tc.raw, *got)
				}

				return
			}

			if got == nil {
				t.Fatalf("Cost(%q) = absent, want %f", tc.raw, tc.want)
			}

			if *got != tc.want {
				t.Errorf("Cost(%q) = %f, want %f", tc.raw, *got, tc.want)
			}
		})
	}
}
