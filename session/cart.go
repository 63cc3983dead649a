// Package session holds the per-browser-session state: the shopping cart
// (a duplicate-free list of product ids) and the authenticated user. All
// operations take the session explicitly; callers save it after mutating.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
)

const cartKey = "cart"

func init() {
	// The cookie store gob-encodes session values.
	gob.Register([]int{})
}

// CartIDs returns the cart's product ids, never nil.
func CartIDs(s sessions.Session) []int {
	ids, ok := s.Get(cartKey).([]int)
	if !ok {
		return []int{}
	}
	return ids
}

// AddToCart appends productID if it is not already in the cart. It does not
// check the catalog; unknown ids are dropped at read time.
func AddToCart(s sessions.Session, productID int) {
	ids := CartIDs(s)
	for _, id := range ids {
		if id == productID {
			return
		}
	}
	s.Set(cartKey, append(ids, productID))
}

// RemoveFromCart deletes productID if present, otherwise does nothing.
func RemoveFromCart(s sessions.Session, productID int) {
	ids := CartIDs(s)
	for i, id := range ids {
		if id == productID {
			s.Set(cartKey, append(ids[:i], ids[i+1:]...))
			return
		}
	}
}

// ClearCart resets the cart to empty.
func ClearCart(s sessions.Session) {
	s.Set(cartKey, []int{})
}
