package node

import "testing"

func TestNew(t *testing.T) {
	n := New(TypeControl, "Journal entry approval")

	if n.ID == "" {
		t.Error("expected generated ID to be non-empty")
	}
	if n.Type != TypeControl {
		t.Errorf("expected Type control, got %q", n.Type)
	}
	if n.Name != "Journal entry approval" {
		t.Errorf("unexpected Name %q", n.Name)
	}
}

func TestNode_BuilderMethods(t *testing.T) {
	n := New(TypeControl, "Access review").
		WithID("ctl-1").
		WithParent("r-1").
		WithStatus(StatusActive).
		WithEffectiveness("Effective").
		WithMeta(MetaKeyControl, true).
		WithMeta(MetaAutomation, "Automated")

	if n.ID != "ctl-1" {
		t.Errorf("expected ID 'ctl-1', got %q", n.ID)
	}
	if n.Parent != "r-1" {
		t.Errorf("expected Parent 'r-1', got %q", n.Parent)
	}
	if n.Status != StatusActive {
		t.Errorf("expected Status %q, got %q", StatusActive, n.Status)
	}
	if n.Effectiveness != "Effective" {
		t.Errorf("expected Effectiveness 'Effective', got %q", n.Effectiveness)
	}
	if !n.KeyControl() {
		t.Error("expected KeyControl() to be true")
	}
	if auto, _ := n.Metadata.String(MetaAutomation); auto != "Automated" {
		t.Errorf("expected automation 'Automated', got %q", auto)
	}
}

func TestNode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{"valid node", Node{ID: "c1", Type: TypeCompany, Name: "Acme"}, false},
		{"missing id", Node{Type: TypeCompany, Name: "Acme"}, true},
		{"missing name", Node{ID: "c1", Type: TypeCompany}, true},
		{"invalid type", Node{ID: "c1", Type: Type("widget"), Name: "Acme"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRelationship_Validate(t *testing.T) {
	if err := NewRelationship("c1", "p1").Validate(); err != nil {
		t.Errorf("valid relationship returned error: %v", err)
	}
	if err := (Relationship{To: "p1"}).Validate(); err == nil {
		t.Error("expected error for empty From")
	}
	if err := (Relationship{From: "c1"}).Validate(); err == nil {
		t.Error("expected error for empty To")
	}
}

func TestControls(t *testing.T) {
	nodes := []Node{
		{ID: "c1", Type: TypeCompany, Name: "Acme"},
		{ID: "ctl-1", Type: TypeControl, Name: "A"},
		{ID: "r1", Type: TypeRisk, Name: "R"},
		{ID: "ctl-2", Type: TypeControl, Name: "B"},
	}

	controls := Controls(nodes)
	if len(controls) != 2 {
		t.Fatalf("Controls() returned %d nodes, want 2", len(controls))
	}
	if controls[0].ID != "ctl-1" || controls[1].ID != "ctl-2" {
		t.Errorf("Controls() did not preserve input order: %v", controls)
	}
}
