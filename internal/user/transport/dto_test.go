package transport

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/nile/internal/user/app"
)

func TestCreateUserRequest_Command(t *testing.T) {
	addr := "Street 1"
	req := CreateUserRequest{
		FirstName:       "Marko",
		LastName:        "Crnic",
		Email:           "marko@example.com",
		Password:        "secret",
		ShippingAddress: &addr,
	}

	cmd, err := req.Command()
	require.NoError(t, err)
	assert.Equal(t, app.CreateUserCommand{
		FirstName:       "Marko",
		LastName:        "Crnic",
		Email:           "marko@example.com",
		Password:        "secret",
		ShippingAddress: &addr,
	}, cmd)
}

func TestCreateUserRequest_Invalid(t *testing.T) {
	valid := CreateUserRequest{FirstName: "Marko", LastName: "Crnic", Email: "marko@example.com", Password: "secret"}

	cases := map[string]func(r *CreateUserRequest){
		"no first name": func(r *CreateUserRequest) { r.FirstName = "" },
		"no last name":  func(r *CreateUserRequest) { r.LastName = " " },
		"no email":      func(r *CreateUserRequest) { r.Email = "" },
		"no password":   func(r *CreateUserRequest) { r.Password = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := valid
			mutate(&r)
			_, err := r.Command()
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateUserRequest_EmailTakenAsGiven(t *testing.T) {
	req := CreateUserRequest{FirstName: "Marko", LastName: "Crnic", Email: "marko.example.com", Password: "secret"}

	cmd, err := req.Command()
	require.NoError(t, err)
	assert.Equal(t, "marko.example.com", cmd.Email)
}

func TestCreateUserResponse_HasNoPassword(t *testing.T) {
	out, err := json.Marshal(NewCreateUserResponse(app.CreateUserResult{ID: uuid.New(), Email: "marko@example.com"}))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "hashed_password")
	assert.Contains(t, fields, "shipping_address")
}

func TestAddToCartRequest_Command(t *testing.T) {
	userID, itemID := uuid.New(), uuid.New()
	var req AddToCartRequest
	require.NoError(t, json.Unmarshal([]byte(`{"item_id":"`+itemID.String()+`","quantity":2}`), &req))

	cmd, err := req.Command(userID)
	require.NoError(t, err)
	assert.Equal(t, app.AddToCartCommand{UserID: userID, ItemID: itemID, Quantity: 2}, cmd)
}

func TestAddToCartRequest_Invalid(t *testing.T) {
	zero, neg := 0, -3
	itemID := uuid.New()

	cases := map[string]AddToCartRequest{
		"no item":       {Quantity: &neg},
		"no quantity":   {ItemID: itemID},
		"zero quantity": {ItemID: itemID, Quantity: &zero},
		"negative":      {ItemID: itemID, Quantity: &neg},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := req.Command(uuid.New())
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewCartResponse(t *testing.T) {
	itemID := uuid.New()
	out, err := json.Marshal(NewCartResponse(app.ListCartItemsResult{
		Items: []app.CartItemResult{{ItemID: itemID, Quantity: 2}},
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"item_id":"`+itemID.String()+`","quantity":2}]}`, string(out))

	out, err = json.Marshal(NewCartResponse(app.ListCartItemsResult{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(out))
}
