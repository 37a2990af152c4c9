package policy

import "testing"

func TestClassify_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		total int
		want  Status
	}{
		{total: 0, want: StatusOK},
		{total: 5, want: StatusOK},
		{total: 6, want: StatusFirstWrittenWarning},
		{total: 7, want: StatusFirstWrittenWarning},
		{total: 8, want: StatusFinalWrittenWarning},
		{total: 11, want: StatusFinalWrittenWarning},
		{total: 12, want: StatusTermination},
		{total: 40, want: StatusTermination},
	}

	for _, tc := range cases {
		if got := Classify(tc.total); got != tc.want {
			t.Errorf("Classify(%d) = %s, want %s", tc.total, got, tc.want)
		}
	}
}

func TestToneFor_TotalMapping(t *testing.T) {
	t.Parallel()

	cases := map[Status]Tone{
		StatusOK:                  ToneOK,
		StatusFirstWrittenWarning: ToneNeutral,
		StatusFinalWrittenWarning: ToneWarn,
		StatusTermination:         ToneDanger,
	}

	for status, want := range cases {
		if got := ToneFor(status); got != want {
			t.Errorf("ToneFor(%s) = %s, want %s", status, got, want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	if got := StatusLabel(StatusFinalWrittenWarning); got != "Final Written Warning" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := StatusLabel(StatusOK); got != "OK" {
		t.Fatalf("unexpected label %q", got)
	}
}
