package ai

import (
	"testing"
)

func TestNewRequest(t *testing.T) {
	msgs := []Message{{Role: RoleUser, Content: "assalamualaikum"}}
	req := NewRequest(msgs, "be kind")

	if len(req.Messages) != 1 || req.Messages[0].Content != "assalamualaikum" {
		t.Errorf("messages not carried: %+v", req.Messages)
	}
	if req.System != "be kind" {
		t.Errorf("expected system 'be kind', got %q", req.System)
	}
	if req.MaxTokens != 1500 {
		t.Errorf("expected default MaxTokens 1500, got %d", req.MaxTokens)
	}
	if req.Temperature != 0.85 {
		t.Errorf("expected default Temperature 0.85, got %f", req.Temperature)
	}
	if req.TopP != 0.95 {
		t.Errorf("expected default TopP 0.95, got %f", req.TopP)
	}
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr bool
	}{
		{
			name:    "valid single turn",
			req:     NewRequest([]Message{{Role: RoleUser, Content: "hi"}}, ""),
			wantErr: false,
		},
		{
			name: "valid multi turn",
			req: NewRequest([]Message{
				{Role: RoleUser, Content: "hi"},
				{Role: RoleAssistant, Content: "salam"},
				{Role: RoleUser, Content: "how are you"},
			}, "sys"),
			wantErr: false,
		},
		{
			name:    "no messages",
			req:     NewRequest(nil, "sys"),
			wantErr: true,
		},
		{
			name:    "unknown role",
			req:     NewRequest([]Message{{Role: "system", Content: "x"}}, ""),
			wantErr: true,
		},
		{
			name:    "empty content",
			req:     NewRequest([]Message{{Role: RoleUser, Content: ""}}, ""),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPersona(t *testing.T) {
	for _, key := range []string{"friend", "ustaz", "counselor", "balanced"} {
		p := Persona(key)
		if p.Key != key {
			t.Errorf("Persona(%q).Key = %q", key, p.Key)
		}
		if p.Prompt == "" || p.LabelEN == "" || p.LabelBM == "" {
			t.Errorf("Persona(%q) incomplete: %+v", key, p)
		}
	}

	if got := Persona("pirate").Key; got != DefaultPersona {
		t.Errorf("unknown persona should fall back to %q, got %q", DefaultPersona, got)
	}
}

func TestPersonasSorted(t *testing.T) {
	ps := Personas()
	if len(ps) != 4 {
		t.Fatalf("expected 4 personas, got %d", len(ps))
	}
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Key >= ps[i].Key {
			t.Errorf("personas not sorted: %q before %q", ps[i-1].Key, ps[i].Key)
		}
	}
}
