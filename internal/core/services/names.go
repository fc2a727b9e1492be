package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
	"github.com/custodia-labs/aroma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aroma-cli/internal/core/ports/driving"
)

// Ensure NameService implements the interface.
var _ driving.NameService = (*NameService)(nil)

// Name list kinds accepted by NameService.Set.
const (
	NameKindTobacco = "tobacco"
	NameKindGeneral = "general"
)

// Config keys for the name lists.
const (
	keyNamesTobacco = "names.tobacco"
	keyNamesGeneral = "names.general"
)

// DefaultNameLists are the category tables published by cigarworld.de.
// They apply when neither the configuration nor the page declares names.
var DefaultNameLists = domain.NameLists{
	Tobacco: domain.NameList{
		"Vanille", "Süße", "Erdig", "Rauchig", "Seifig", "Fruchtig",
		"Aromatisierung", "Würze/Umami", "Säure", "Nussig", "Grasig", "Röstaromen",
	},
	General: domain.NameList{
		"Holz", "Pfeffer", "Gras", "Frucht", "Creme", "Süß",
		"Nuss", "Schokolade", "Kaffee", "Toast", "Leder", "Erde",
	},
}

// NameService manages the configured category name lists.
type NameService struct {
	configStore driven.ConfigStore
}

// NewNameService creates a new name service.
func NewNameService(configStore driven.ConfigStore) *NameService {
	return &NameService{configStore: configStore}
}

// Get returns the configured lists. Either list may be empty.
func (s *NameService) Get() domain.NameLists {
	if s.configStore == nil {
		return domain.NameLists{}
	}
	return domain.NameLists{
		Tobacco: CleanNames(s.configStore.GetStringSlice(keyNamesTobacco)),
		General: CleanNames(s.configStore.GetStringSlice(keyNamesGeneral)),
	}
}

// Set replaces one list and persists it.
func (s *NameService) Set(kind string, names []string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	var key string
	switch kind {
	case NameKindTobacco:
		key = keyNamesTobacco
	case NameKindGeneral:
		key = keyNamesGeneral
	default:
		return fmt.Errorf("%w: unknown name list %q (want %s or %s)",
			domain.ErrInvalidInput, kind, NameKindTobacco, NameKindGeneral)
	}

	cleaned := CleanNames(names)
	if len(cleaned) == 0 {
		return fmt.Errorf("%w: %s list needs at least one name", domain.ErrInvalidInput, kind)
	}
	for i, name := range cleaned {
		if name == "" {
			return fmt.Errorf("%w: empty name at position %d", domain.ErrInvalidInput, i)
		}
	}

	return s.configStore.Set(key, []string(cleaned))
}

// CleanNames trims surrounding whitespace and converts each name to
// Unicode NFC, so that "Süß" typed on one system matches "Süß" scraped
// from a page that uses combining diaeresis.
func CleanNames(names []string) domain.NameList {
	if len(names) == 0 {
		return nil
	}
	out := make(domain.NameList, len(names))
	for i, name := range names {
		out[i] = norm.NFC.String(strings.TrimSpace(name))
	}
	return out
}

// resolveNames picks the first complete set: configured, then page, then defaults.
func resolveNames(configured, page domain.NameLists) domain.NameLists {
	switch {
	case configured.Complete():
		return configured
	case page.Complete():
		return domain.NameLists{Tobacco: CleanNames(page.Tobacco), General: CleanNames(page.General)}
	default:
		return DefaultNameLists
	}
}
