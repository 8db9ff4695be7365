package queue

import (
	"context"
	"testing"
)

func TestProcessFileDeleteMessageRejectsMalformedJSON(t *testing.T) {
	err := ProcessFileDeleteMessage(context.Background(), nil, "{not json")
	if err == nil {
		t.Fatal("expected error for malformed message")
	}
}
