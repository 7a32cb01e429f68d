package sdo

import "testing"

func TestCheckRatesAudio(t *testing.T) {
	d := New()
	d.SampFreq = 16000
	d.FrameDur = 1
	if err := d.CheckRates(); err != nil {
		t.Fatalf("CheckRates: %v", err)
	}
	if d.DataRate != 16000 {
		t.Errorf("DataRate = %v, want 16000", d.DataRate)
	}
}

func TestCheckRatesFramed(t *testing.T) {
	d := New()
	d.SampFreq = 16000
	d.FrameDur = 160 // 10 ms shift at 16 kHz
	if err := d.CheckRates(); err != nil {
		t.Fatalf("CheckRates: %v", err)
	}
	if d.DataRate != 100 {
		t.Errorf("DataRate = %v, want 100", d.DataRate)
	}
}

func TestCheckRatesVariable(t *testing.T) {
	d := New()
	d.SampFreq = 16000
	d.FrameDur = -1
	d.DataRate = 0
	if err := d.CheckRates(); err != nil {
		t.Fatalf("CheckRates: %v", err)
	}
}

func TestCheckRatesRejectsZeroSampFreq(t *testing.T) {
	d := New()
	d.FrameDur = 1
	if err := d.CheckRates(); err == nil {
		t.Error("CheckRates with SampFreq=0: want error, got nil")
	}
}

func TestSetStartTime(t *testing.T) {
	d := New()
	d.DataRate = 200
	d.TimeZero = 0
	d.StartRecord = 250
	if err := d.SetStartTime(); err != nil {
		t.Fatalf("SetStartTime: %v", err)
	}
	if d.StartTime != 1.25 {
		t.Errorf("StartTime = %v, want 1.25", d.StartTime)
	}
}

func TestSampleCentreTime(t *testing.T) {
	d := New()
	d.SampFreq = 10
	if got := d.SampleCentreTime(0); got != 0.05 {
		t.Errorf("SampleCentreTime(0) = %v, want 0.05", got)
	}
}
