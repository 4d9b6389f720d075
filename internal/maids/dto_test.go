package maids

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/google/uuid"
)

func TestToDTORendersEmptyCollections(t *testing.T) {
	exp := 3
	dto := ToDTO(&models.Maid{ID: uuid.New(), Name: "Grace Kim", Experience: &exp})
	if dto.Experience != 3 || dto.Rate != 0 {
		t.Fatalf("unexpected numbers %+v", dto)
	}
	raw, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"services":[]`, `"references":[]`, `"ownerRef":null`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("expected %s in %s", want, raw)
		}
	}
}
