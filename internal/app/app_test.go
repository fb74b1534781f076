package app

import (
	"testing"

	"github.com/anand2468/easyeval/internal/config"
)

func TestApplyConfigRunsCallbacks(t *testing.T) {
	a := &App{Config: &config.Config{}}

	var got []int
	a.RegisterConfigCallback(func(cfg *config.Config) {
		got = append(got, cfg.Evaluation.Workers)
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		got = append(got, cfg.Evaluation.Workers*10)
	})

	a.ApplyConfig(&config.Config{Evaluation: config.EvaluationConfig{Workers: 4}})

	if len(got) != 2 || got[0] != 4 || got[1] != 40 {
		t.Fatalf("callbacks saw %v, want [4 40]", got)
	}
}

func TestApplyConfigLeavesStartupConfigAlone(t *testing.T) {
	startup := &config.Config{
		JWT:        config.JWTConfig{Secret: "startup-secret"},
		Evaluation: config.EvaluationConfig{Workers: 8},
	}
	a := &App{Config: startup}

	a.ApplyConfig(&config.Config{
		JWT:        config.JWTConfig{Secret: "reloaded-secret"},
		Evaluation: config.EvaluationConfig{Workers: 2},
	})

	// Request-path code holds pointers into the startup config; a reload
	// must never write through them.
	if startup.JWT.Secret != "startup-secret" {
		t.Fatalf("startup JWT secret mutated to %q", startup.JWT.Secret)
	}
	if startup.Evaluation.Workers != 8 {
		t.Fatalf("startup worker cap mutated to %d", startup.Evaluation.Workers)
	}
}
