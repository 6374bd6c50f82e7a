package nakama

import (
	"fmt"
	"strconv"

	"phase10/internal/app"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var responseMarshaler = protojson.MarshalOptions{EmitUnpopulated: true}

// marshalResponse encodes an RPC response object. Values must be types
// structpb.NewValue accepts: slices as []interface{}, objects as
// map[string]interface{}.
func marshalResponse(fields map[string]interface{}) (string, error) {
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return "", fmt.Errorf("failed to build response: %w", err)
	}
	data, err := responseMarshaler.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(data), nil
}

func summaryToValue(s app.Summary) map[string]interface{} {
	phases := make(map[string]interface{}, len(s.Phases))
	for userID, tag := range s.Phases {
		phases[userID] = tag.String()
	}
	return map[string]interface{}{
		"game_id": s.GameID,
		"seed":    strconv.FormatInt(s.Seed, 10),
		"winner":  s.Winner,
		"turns":   s.Turns,
		"phases":  phases,
	}
}
