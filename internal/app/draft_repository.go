package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/gtti-registration/internal/domain/draft"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

// costliestRune is escaped to six bytes when a draft is encoded and to
// seven when the encoded draft is embedded in another JSON string.
const costliestRune = "<"

// DraftRepository reads and writes the registration draft under its fixed
// key in an applicant's KeyValueStore.
type DraftRepository struct {
	logger *slog.Logger
}

// NewDraftRepository creates a DraftRepository. A nil logger discards output.
func NewDraftRepository(logger *slog.Logger) *DraftRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DraftRepository{logger: logger}
}

// Load returns the stored draft. A missing record is an empty draft. A
// record that is not valid JSON is logged and also treated as empty, so a
// corrupted store never locks the applicant out of the wizard.
func (r *DraftRepository) Load(ctx context.Context, store ports.KeyValueStore) (draft.Draft, error) {
	raw, ok, err := store.GetItem(ctx, draft.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("reading draft: %w", err)
	}
	if !ok {
		return draft.New(), nil
	}

	d, err := draft.Decode(raw)
	if err != nil {
		r.logger.WarnContext(ctx, "discarding unreadable draft",
			slog.String("operation", "DraftRepository.Load"),
			slog.Int("length", len(raw)),
			slog.Any("error", err),
		)
		return draft.New(), nil
	}
	return d, nil
}

// Save writes the whole draft, replacing the stored record.
func (r *DraftRepository) Save(ctx context.Context, store ports.KeyValueStore, d draft.Draft) error {
	encoded, err := d.Encode()
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	if err := store.SetItem(ctx, draft.StorageKey, encoded); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	return nil
}

// Clear removes the stored draft.
func (r *DraftRepository) Clear(ctx context.Context, store ports.KeyValueStore) error {
	if err := store.RemoveItem(ctx, draft.StorageKey); err != nil {
		return fmt.Errorf("removing draft: %w", err)
	}
	return nil
}

// LargestDraft returns the biggest draft the service can store for def
// when values are capped at maxValueLength runes. Masked fields hold a
// full mask; every other field holds maxValueLength copies of the rune
// that costs the most once encoded.
func LargestDraft(def *wizard.Definition, maxValueLength int) draft.Draft {
	d := draft.New()
	for _, step := range def.Steps() {
		for _, f := range step.Fields {
			if f.Mask != "" {
				d[f.Name] = f.Mask.Apply(strings.Repeat("9", len(f.Mask)))
				continue
			}
			d[f.Name] = strings.Repeat(costliestRune, maxValueLength)
		}
	}
	return d
}

// CheckDraftCapacity reports whether a store whose limit is enforced by
// fits can hold the largest draft for def and maxValueLength.
func CheckDraftCapacity(def *wizard.Definition, maxValueLength int, fits func(key, value string) error) error {
	encoded, err := LargestDraft(def, maxValueLength).Encode()
	if err != nil {
		return err
	}
	if err := fits(draft.StorageKey, encoded); err != nil {
		return fmt.Errorf("largest draft with %d-rune values: %w", maxValueLength, err)
	}
	return nil
}
