package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func witnessHeader(inputs string) string {
	return `{"extension_degree":1,"field_characteristic":"` + bn254Modulus + `",` +
		`"input_variables":` + inputs + `,"n_constraints":0,"n_variables":5,"output_variables":[]}`
}

func elem(t *testing.T, s string) fr.Element {
	t.Helper()
	e, err := ParseFieldElement(s)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", s, err)
	}
	return e
}

func TestWitnessPartition(t *testing.T) {
	data := witnessHeader("[2,4]") + "\n" +
		`[1,"11"]` + "\n" +
		`[2,"22"]` + "\n" +
		`[3,"33"]` + "\n" +
		`[4,"44"]` + "\n"
	w, err := ParseWitness(strings.NewReader(data))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(w.InputValues) != 2 || len(w.WitnessValues) != 2 {
		t.Fatalf("unexpected partition sizes: %d inputs, %d witnesses", len(w.InputValues), len(w.WitnessValues))
	}
	for idx, want := range map[int]string{2: "22", 4: "44"} {
		got, ok := w.InputValues[idx]
		if !ok {
			t.Fatalf("missing input value for index %d", idx)
		}
		wantElem := elem(t, want)
		if !got.Equal(&wantElem) {
			t.Fatalf("input %d: expected %s, got %s", idx, want, got.String())
		}
	}
	for idx, want := range map[int]string{1: "11", 3: "33"} {
		got, ok := w.WitnessValues[idx]
		if !ok {
			t.Fatalf("missing witness value for index %d", idx)
		}
		wantElem := elem(t, want)
		if !got.Equal(&wantElem) {
			t.Fatalf("witness %d: expected %s, got %s", idx, want, got.String())
		}
	}
}

func TestWitnessPartitionDropsConstantIndex(t *testing.T) {
	data := witnessHeader("[2]") + "\n" + `[0,"1"]` + "\n" + `[1,"7"]` + "\n"
	w, err := ParseWitness(strings.NewReader(data))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if _, ok := w.InputValues[0]; ok {
		t.Fatal("index 0 must never appear in input values")
	}
	if _, ok := w.WitnessValues[0]; ok {
		t.Fatal("index 0 must never appear in witness values")
	}
	if len(w.WitnessValues) != 1 {
		t.Fatalf("expected 1 witness value, got %d", len(w.WitnessValues))
	}
}

func TestWitnessMalformedRow(t *testing.T) {
	data := witnessHeader("[2]") + "\n" + `[1,"7"]` + "\n" + `["7",1]` + "\n"
	_, err := ParseWitnessFile(strings.NewReader(data))
	var recordErr *MalformedRecordError
	if !errors.As(err, &recordErr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if recordErr.Line != 3 {
		t.Fatalf("expected line 3, got %d", recordErr.Line)
	}
}

func TestParseInputsFileWithHeader(t *testing.T) {
	data := witnessHeader("[2,4]") + "\n" + `[4,"44"]` + "\n" + `[2,"22"]` + "\n"
	inputs, err := ParseInputsFile(strings.NewReader(data))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
}

func TestParseInputsFileWithoutHeader(t *testing.T) {
	data := `[4,"44"]` + "\n" + `[2,"22"]` + "\n"
	inputs, err := ParseInputsFile(strings.NewReader(data))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
	if inputs[0].Index != 4 || inputs[1].Index != 2 {
		t.Fatalf("expected file order preserved, got %+v", inputs)
	}
}

func TestInputVectorSortsByIndex(t *testing.T) {
	inputs := []Assignment{
		{Index: 4, Value: elem(t, "44")},
		{Index: 2, Value: elem(t, "22")},
	}
	values := InputVector(inputs)
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
	first := elem(t, "22")
	second := elem(t, "44")
	if !values[0].Equal(&first) || !values[1].Equal(&second) {
		t.Fatalf("expected index order [22 44], got [%s %s]", values[0].String(), values[1].String())
	}
}
