// Package fixtures embeds the sample users and properties and loads them
// into the database through the repositories.
package fixtures

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

//go:embed data/*.json
var data embed.FS

type userFixture struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Users returns the embedded users.json.
func Users() ([]model.NewUser, error) {
	var raw []userFixture
	if err := decode("data/users.json", &raw); err != nil {
		return nil, err
	}

	users := make([]model.NewUser, 0, len(raw))
	for _, u := range raw {
		users = append(users, model.NewUser{Name: u.Name, Email: u.Email, Password: u.Password})
	}
	return users, nil
}

// Properties returns the embedded properties.json. Costs are in cents.
func Properties() ([]model.NewProperty, error) {
	var properties []model.NewProperty
	if err := decode("data/properties.json", &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func decode(name string, v any) error {
	b, err := data.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to decode fixture %s: %w", name, err)
	}
	return nil
}

type UserAdder interface {
	AddUser(ctx context.Context, payload model.NewUser) (*model.User, error)
}

type PropertyAdder interface {
	AddProperty(ctx context.Context, payload model.NewProperty) (*model.Property, error)
}

// Result counts the rows Seed inserted.
type Result struct {
	Users      int
	Properties int
}

// Seed inserts every fixture user, then every fixture property, stopping
// at the first failure. Users go first because properties reference them
// by owner_id.
func Seed(ctx context.Context, logger *zerolog.Logger, users UserAdder, properties PropertyAdder) (Result, error) {
	var res Result

	newUsers, err := Users()
	if err != nil {
		return res, err
	}
	for _, u := range newUsers {
		created, err := users.AddUser(ctx, u)
		if err != nil {
			return res, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		res.Users++
		logger.Debug().Int64("user_id", created.ID).Str("email", created.Email).Msg("seeded user")
	}

	newProperties, err := Properties()
	if err != nil {
		return res, err
	}
	for _, p := range newProperties {
		created, err := properties.AddProperty(ctx, p)
		if err != nil {
			return res, fmt.Errorf("failed to seed property %q: %w", p.Title, err)
		}
		res.Properties++
		logger.Debug().Int64("property_id", created.ID).Str("title", created.Title).Msg("seeded property")
	}

	logger.Info().Int("users", res.Users).Int("properties", res.Properties).Msg("fixtures seeded")
	return res, nil
}
