package parser

import (
	"errors"
	"strings"
	"testing"
)

const sampleHeader = `{"extension_degree":1,` +
	`"field_characteristic":"21888242871839275222246405745257275088548364400416034343698204186575808495617",` +
	`"input_variables":[2,4],"n_constraints":1,"n_variables":5,"output_variables":[4]}`

func TestRecordsEmptyStream(t *testing.T) {
	records := NewRecords(strings.NewReader(""))
	if _, err := records.Header(); !errors.Is(err, ErrTruncatedFile) {
		t.Fatalf("expected ErrTruncatedFile, got %v", err)
	}
}

func TestRecordsHeader(t *testing.T) {
	records := NewRecords(strings.NewReader(sampleHeader + "\n"))
	h, err := records.Header()
	if err != nil {
		t.Fatalf("failed to decode header: %v", err)
	}
	if h.NbVariables != 5 || h.NbConstraints != 1 {
		t.Fatalf("unexpected header counts: %+v", h)
	}
	if len(h.InputVariables) != 2 || h.InputVariables[0] != 2 || h.InputVariables[1] != 4 {
		t.Fatalf("unexpected input variables: %v", h.InputVariables)
	}
	if h.FieldCharacteristic.Sign() <= 0 {
		t.Fatalf("field characteristic not parsed: %v", h.FieldCharacteristic)
	}
}

func TestRecordsMalformedHeader(t *testing.T) {
	records := NewRecords(strings.NewReader(`{"field_characteristic":"not-a-number"}` + "\n"))
	if _, err := records.Header(); !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestRecordsMalformedLineNumber(t *testing.T) {
	data := sampleHeader + "\n" + `{"A":[["1",1]],"B":[["1",2]],"C":[["1",3]]}` + "\n" + "not json\n"
	records := NewRecords(strings.NewReader(data))
	if _, err := records.Header(); err != nil {
		t.Fatalf("failed to decode header: %v", err)
	}
	var c Constraint
	if ok, err := records.Next(&c); !ok || err != nil {
		t.Fatalf("failed to decode first row: ok=%v err=%v", ok, err)
	}
	_, err := records.Next(&c)
	var recordErr *MalformedRecordError
	if !errors.As(err, &recordErr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if recordErr.Line != 3 {
		t.Fatalf("expected line 3, got %d", recordErr.Line)
	}
}

func TestRecordsSkipsEmptyLines(t *testing.T) {
	data := sampleHeader + "\n\n" + `{"A":[],"B":[],"C":[]}` + "\n\n"
	records := NewRecords(strings.NewReader(data))
	if _, err := records.Header(); err != nil {
		t.Fatalf("failed to decode header: %v", err)
	}
	var c Constraint
	ok, err := records.Next(&c)
	if !ok || err != nil {
		t.Fatalf("expected one row, got ok=%v err=%v", ok, err)
	}
	ok, err = records.Next(&c)
	if ok || err != nil {
		t.Fatalf("expected end of stream, got ok=%v err=%v", ok, err)
	}
}
