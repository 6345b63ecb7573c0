package solvercfg

import "testing"

func TestLoadConfigFromBytes_GlobalTime(t *testing.T) {
	yaml := `
global_time: 60
rng_seed: 12345
early_termination: 5
n_workers: 4
sample_config:
  n_container_samples: 500
  n_focussed_samples: 50
  n_coord_descents: 4
min_item_separation: 0.01
`
	cfg, err := LoadConfigFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	if cfg.RNGSeed != 12345 {
		t.Errorf("RNGSeed = %d, want 12345", cfg.RNGSeed)
	}
	if cfg.SampleConfig.NContainerSamples != 500 {
		t.Errorf("NContainerSamples = %d, want 500", cfg.SampleConfig.NContainerSamples)
	}
	explore, compress := cfg.ExploreCompressSeconds()
	if explore <= 0 || compress <= 0 {
		t.Errorf("expected positive split of global_time, got explore=%f compress=%f", explore, compress)
	}
	if explore+compress != 60 {
		t.Errorf("expected explore+compress to sum to global_time 60, got %f", explore+compress)
	}
}

func TestLoadConfigFromBytes_ExplicitSplit(t *testing.T) {
	yaml := `
exploration: 40
compression: 10
`
	cfg, err := LoadConfigFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	explore, compress := cfg.ExploreCompressSeconds()
	if explore != 40 || compress != 10 {
		t.Errorf("expected explicit split to pass through unchanged, got explore=%f compress=%f", explore, compress)
	}
}

func TestLoadConfigFromBytes_MutualExclusionRejected(t *testing.T) {
	yaml := `
global_time: 60
exploration: 40
compression: 10
`
	if _, err := LoadConfigFromBytes([]byte(yaml)); err == nil {
		t.Error("expected an error when global_time and exploration/compression are both set")
	}
}

func TestLoadConfigFromBytes_MissingBudgetRejected(t *testing.T) {
	if _, err := LoadConfigFromBytes([]byte(`rng_seed: 1`)); err == nil {
		t.Error("expected an error when no time budget is set")
	}
}

func TestLoadConfigFromBytes_DefaultsFillIn(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`global_time: 30`))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	if cfg.NWorkers <= 0 {
		t.Error("expected NWorkers to default to a positive value")
	}
	if cfg.EarlyTermination <= 0 {
		t.Error("expected EarlyTermination to default to a positive value")
	}
	if cfg.SampleConfig.NCoordDescents <= 0 {
		t.Error("expected SampleConfig to default to LBFSampleConfig")
	}
	if cfg.RNGSeed == 0 {
		t.Error("expected RNGSeed to be auto-generated when omitted")
	}
}

func TestConfig_HashDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RNGSeed = 99
	h1 := cfg.Hash()
	h2 := cfg.Hash()
	if string(h1) != string(h2) {
		t.Error("Hash should be deterministic for an unchanged Config")
	}

	other := DefaultConfig()
	other.RNGSeed = 100
	if string(cfg.Hash()) == string(other.Hash()) {
		t.Error("Hash should differ when RNGSeed differs")
	}
}
