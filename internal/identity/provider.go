// Package identity loads the static users file that maps dashboard logins
// to merchant identifiers. The file is the system's only credential store;
// there is no registration or write path.
package identity

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Ramiogue/dashboard-app2/internal/models"

	"gopkg.in/yaml.v3"
)

type usersFile struct {
	Users map[string]models.User `yaml:"users"`
}

// Provider resolves usernames against the users file loaded at startup.
type Provider struct {
	users map[string]models.User
}

// Load reads and parses the users file at path.
func Load(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file %s: %w", path, err)
	}

	var f usersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse users file %s: %w", path, err)
	}
	if len(f.Users) == 0 {
		return nil, fmt.Errorf("users file %s defines no users", path)
	}

	users := make(map[string]models.User, len(f.Users))
	for username, u := range f.Users {
		u.Username = username
		users[username] = u
	}

	return &Provider{users: users}, nil
}

// Lookup finds a user by username. An exact match wins; otherwise the
// lookup falls back to a case-insensitive scan.
func (p *Provider) Lookup(username string) (*models.User, error) {
	if u, ok := p.users[username]; ok {
		return &u, nil
	}
	for name, u := range p.users {
		if strings.EqualFold(name, username) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUserNotFound, username)
}

// Merchant returns the merchant binding for username. A user without a
// merchant_id entry is a configuration error; the message lists the known
// usernames to help the operator spot the mismatch.
func (p *Provider) Merchant(username string) (*models.User, error) {
	u, err := p.Lookup(username)
	if err != nil {
		return nil, err
	}
	if u.MerchantID == "" {
		return nil, fmt.Errorf("%w: got username %q, known users: %s",
			ErrMerchantMappingNotFound, username, strings.Join(p.Usernames(), ", "))
	}
	return u, nil
}

// Usernames returns all configured usernames, sorted.
func (p *Provider) Usernames() []string {
	names := make([]string, 0, len(p.users))
	for name := range p.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
