package planner

import (
	"reflect"
	"testing"

	"github.com/danieljhkim/embassy-init/internal/manifest"
)

func TestNewPlan(t *testing.T) {
	plan := NewPlan("/work", "blinky")

	if plan.Project != "blinky" || plan.Parent != "/work" {
		t.Errorf("plan = %+v", plan)
	}
	if plan.Operations == nil || len(plan.Operations) != 0 {
		t.Errorf("expected empty Operations, got %v", plan.Operations)
	}
	if plan.HasConflicts() {
		t.Error("new plan should have no conflicts")
	}
}

func TestPlan_AddConflict(t *testing.T) {
	plan := NewPlan("/work", "blinky")
	plan.AddConflict(Conflict{Path: "/work/blinky", Reason: "destination directory already exists"})

	if !plan.HasConflicts() {
		t.Error("HasConflicts() = false after AddConflict")
	}
}

func TestPlan_Stages(t *testing.T) {
	plan := NewPlan("/work", "x")
	for _, s := range []Stage{StageCreated, StageCreated, StageConfigured, StageManifestWritten, StageManifestWritten, StageSourceWritten} {
		plan.AddOperation(Operation{Type: OpWriteFile, Stage: s, Path: "f"})
	}

	want := []Stage{StageCreated, StageConfigured, StageManifestWritten, StageSourceWritten}
	if got := plan.Stages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Stages() = %v, want %v", got, want)
	}
}

func TestPlan_Paths(t *testing.T) {
	plan := NewPlan("/work", "x")
	plan.AddOperation(Operation{Type: OpCreateProject, Path: "x"})
	plan.AddOperation(Operation{Type: OpWriteFile, Path: "Cargo.toml"})
	plan.AddOperation(Operation{Type: OpAddDependency, Dependency: &manifest.Entry{Name: "log", Features: manifest.NewFeatureSet()}})
	plan.AddOperation(Operation{Type: OpAppendFile, Path: "Cargo.toml"})
	plan.AddOperation(Operation{Type: OpWriteFile, Path: "src/main.rs"})

	want := []string{"Cargo.toml", "src/main.rs"}
	if got := plan.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestOperation_String(t *testing.T) {
	dep := manifest.Entry{Name: "defmt", Features: manifest.NewFeatureSet(), Optional: true}

	tests := []struct {
		op   Operation
		want string
	}{
		{Operation{Type: OpCreateProject, Path: "blinky"}, "cargo new blinky"},
		{Operation{Type: OpEnterProject, Path: "blinky"}, "cd blinky"},
		{Operation{Type: OpWriteFile, Path: "build.rs"}, "write build.rs"},
		{Operation{Type: OpAppendFile, Path: "Cargo.toml"}, "append to Cargo.toml"},
		{Operation{Type: OpEnsureSection, Path: "Cargo.toml", Section: "[features]"}, "ensure [features] in Cargo.toml"},
		{Operation{Type: OpAddDependency, Dependency: &dep}, "cargo add defmt --optional"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStage_String(t *testing.T) {
	if StageMemoryLayoutWritten.String() != "memory-layout-written" {
		t.Errorf("got %q", StageMemoryLayoutWritten.String())
	}
	if Stage(99).String() != "Stage(99)" {
		t.Errorf("got %q", Stage(99).String())
	}
}
