package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts a wire identifier into an ObjectID
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, InvalidIDError{Value: s}
	}
	return id, nil
}

// ParseIDList parses ids given either as repeated values or as comma-separated
// lists (or both). Empty entries are rejected.
func ParseIDList(values []string) ([]primitive.ObjectID, error) {
	var ids []primitive.ObjectID
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			id, err := ParseID(part)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
