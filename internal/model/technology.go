package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Technology is a catalog entry. The catalog is read-only in this service;
// documents keep whatever shape they were seeded with.
type Technology struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Extra map[string]any     `bson:",inline" json:"-"`
}

func (t *Technology) GetID() primitive.ObjectID   { return t.ID }
func (t *Technology) SetID(id primitive.ObjectID) { t.ID = id }
