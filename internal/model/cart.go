package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart item status. Items enter the collection as StatusInCart and move to
// StatusOrdered at checkout; the same collection backs both listings.
const (
	StatusInCart  = "in_cart"
	StatusOrdered = "ordered"
)

// CartItem is a product placed in a shopper's cart. The product fields are
// whatever the client posted; only ownership and status are structural.
type CartItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PurchasedBy string             `bson:"purchasedBy" json:"purchasedBy"`
	Status      string             `bson:"status" json:"status"`
	AddedAt     time.Time          `bson:"addedAt" json:"addedAt"`
	Extra       map[string]any     `bson:",inline" json:"-"`
}

func (i *CartItem) GetID() primitive.ObjectID   { return i.ID }
func (i *CartItem) SetID(id primitive.ObjectID) { i.ID = id }
