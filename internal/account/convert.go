package account

import (
	"encoding/json"
	"fmt"
	"strconv"

	"storefront/internal/model"
)

const emptyList = "[]"

// ToAccount converts a stored record into the account model. Numeric fields
// default to zero and list fields to "[]" when missing.
func ToAccount(r Record) model.UserAccount {
	return model.UserAccount{
		ID:                r.ID,
		Nama:              stringField(r.Fields, FieldNama, ""),
		Phone:             stringField(r.Fields, FieldPhone, ""),
		Avatar:            stringField(r.Fields, FieldAvatar, ""),
		MembershipPoints:  numberField(r.Fields, FieldMembershipPoints),
		MembershipBalance: numberField(r.Fields, FieldMembershipBalance),
		Orders:            stringField(r.Fields, FieldOrders, emptyList),
		Wishlist:          stringField(r.Fields, FieldWishlist, ""),
		PaymentMethods:    stringField(r.Fields, FieldPaymentMethods, emptyList),
		ShippingAddresses: stringField(r.Fields, FieldShippingAddresses, emptyList),
		Notifications:     stringField(r.Fields, FieldNotifications, emptyList),
	}
}

func stringField(f Fields, name, fallback string) string {
	v, ok := f[name]
	if !ok || v == nil {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if s == "" {
		return fallback
	}
	return s
}

func numberField(f Fields, name string) int64 {
	switch v := f[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0
		}
		return int64(n)
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return int64(n)
	default:
		return 0
	}
}
