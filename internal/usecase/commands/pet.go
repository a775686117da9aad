package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"pet-adoption/internal/domain/pet"
	"pet-adoption/internal/infra"
	"pet-adoption/internal/pkg/clock"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/patch"
	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPetNotFound         = errs.New("pet not found")
	ErrPetHasHistory       = errs.New("pet has adoption history")
	ErrUnsupportedImage    = errs.New("unsupported image type")
	ErrImageTooLarge       = errs.New("image exceeds maximum size")
	ErrImageStorageFailure = errs.New("image storage failed")
)

// ImageStore persists uploaded pet images and hands back the public URL
type ImageStore interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Remove(ctx context.Context, url string) error
}

type ImagePolicy struct {
	MaxBytes          int64
	AllowedExtensions []string
}

type ImageUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Body        io.Reader
}

// AddPetInput carries raw form values; numeric fields are parsed leniently.
type AddPetInput struct {
	Name        string
	Species     string
	Breed       string
	Age         string
	Gender      string
	Description string
	Price       string
	Image       *ImageUpload
}

// EditPetInput leaves a field untouched when it is nil.
type EditPetInput struct {
	Name        *string
	Species     *string
	Breed       *string
	Age         *string
	Gender      *string
	Description *string
	Price       *string
	Image       *ImageUpload
}

type PetCommands interface {
	AddPet(ctx context.Context, ownerID uuid.UUID, in AddPetInput) (uuid.UUID, error)
	EditPet(ctx context.Context, ownerID, petID uuid.UUID, in EditPetInput) error
	DeletePet(ctx context.Context, ownerID, petID uuid.UUID) error
}

type petCommandsImpl struct {
	uow    shared.UnitOfWork
	images ImageStore
	policy ImagePolicy
	clock  clock.Clock
}

func NewPetCommands(uow shared.UnitOfWork, images ImageStore, policy ImagePolicy, clock clock.Clock) PetCommands {
	return &petCommandsImpl{
		uow:    uow,
		images: images,
		policy: policy,
		clock:  clock,
	}
}

func (c *petCommandsImpl) AddPet(ctx context.Context, ownerID uuid.UUID, in AddPetInput) (uuid.UUID, error) {
	attrs := pet.Attributes{
		Name:        in.Name,
		Species:     in.Species,
		Breed:       in.Breed,
		Age:         pet.ParseAgeOr(in.Age, 0),
		Gender:      in.Gender,
		Description: in.Description,
		Price:       pet.ParseMoneyOr(in.Price, pet.Money{}),
	}
	p, err := pet.NewPet(ownerID, attrs, "", c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	imageURL, err := c.storeImage(ctx, ownerID, in.Image)
	if err != nil {
		return uuid.Nil, err
	}
	p.ReplaceImage(imageURL)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pets().Create(ctx, p)
	})
	if err != nil {
		c.releaseImage(ctx, imageURL)
		if infra.IsKind(err, infra.KindCheckViolated) {
			return uuid.Nil, errs.Mark(err, ErrValidation)
		}
		return uuid.Nil, errs.Mark(err, ErrStoreFailure)
	}

	return p.ID(), nil
}

func (c *petCommandsImpl) EditPet(ctx context.Context, ownerID, petID uuid.UUID, in EditPetInput) error {
	newURL, err := c.storeImage(ctx, ownerID, in.Image)
	if err != nil {
		return err
	}

	var oldURL string
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := c.lockOwned(ctx, tx, ownerID, petID)
		if err != nil {
			return err
		}

		prev := p.Attributes()
		attrs := pet.Attributes{
			Name:        patch.Coalesce(in.Name, prev.Name),
			Species:     patch.Coalesce(in.Species, prev.Species),
			Breed:       patch.Coalesce(in.Breed, prev.Breed),
			Age:         patch.CoalesceWith(in.Age, prev.Age, pet.ParseAgeOr),
			Gender:      patch.Coalesce(in.Gender, prev.Gender),
			Description: patch.Coalesce(in.Description, prev.Description),
			Price:       patch.CoalesceWith(in.Price, prev.Price, pet.ParseMoneyOr),
		}
		if err := p.Update(attrs); err != nil {
			return errs.Mark(err, ErrValidation)
		}

		oldURL = ""
		if newURL != "" {
			oldURL = p.ReplaceImage(newURL)
		}
		return tx.Pets().Update(ctx, p)
	})
	if err != nil {
		c.releaseImage(ctx, newURL)
		return c.translate(err)
	}

	// The row now points at the new image; the old file can go.
	if oldURL != newURL {
		c.releaseImage(ctx, oldURL)
	}
	return nil
}

func (c *petCommandsImpl) DeletePet(ctx context.Context, ownerID, petID uuid.UUID) error {
	var imageURL string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := c.lockOwned(ctx, tx, ownerID, petID)
		if err != nil {
			return err
		}
		imageURL = p.ImageURL()
		return tx.Pets().Delete(ctx, p.ID())
	})
	if err != nil {
		return c.translate(err)
	}

	c.releaseImage(ctx, imageURL)
	return nil
}

// lockOwned reports pets of other owners as not found.
func (c *petCommandsImpl) lockOwned(ctx context.Context, tx shared.Tx, ownerID, petID uuid.UUID) (*pet.Pet, error) {
	p, err := tx.Pets().LockByID(ctx, petID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	if !p.OwnedBy(ownerID) {
		return nil, ErrPetNotFound
	}
	return p, nil
}

func (c *petCommandsImpl) translate(err error) error {
	switch {
	case errs.Is(err, ErrPetNotFound), errs.Is(err, ErrValidation):
		return err
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrPetHasHistory
	case infra.IsKind(err, infra.KindCheckViolated):
		return errs.Mark(err, ErrValidation)
	default:
		return errs.Mark(err, ErrStoreFailure)
	}
}

func (c *petCommandsImpl) storeImage(ctx context.Context, ownerID uuid.UUID, upload *ImageUpload) (string, error) {
	if upload == nil || upload.Body == nil || upload.Filename == "" {
		return "", nil
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(upload.Filename)), ".")
	if !slices.Contains(c.policy.AllowedExtensions, ext) {
		return "", ErrUnsupportedImage
	}
	if c.policy.MaxBytes > 0 && upload.Size > c.policy.MaxBytes {
		return "", ErrImageTooLarge
	}

	key := ImageKey(ownerID, c.clock.Now().Unix(), uuid.NewString()[:8], upload.Filename)
	url, err := c.images.Save(ctx, key, upload.Body, upload.ContentType)
	if err != nil {
		return "", errs.Mark(err, ErrImageStorageFailure)
	}
	return url, nil
}

func (c *petCommandsImpl) releaseImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := c.images.Remove(ctx, url); err != nil {
		slog.Warn("failed to remove pet image", "url", url, "error", err.Error())
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ImageKey builds {ownerID}_{unix}_{nonce}_{sanitized-name}. The nonce keeps
// two uploads of the same file in the same second apart.
func ImageKey(ownerID uuid.UUID, unix int64, nonce, filename string) string {
	name := unsafeFilenameChars.ReplaceAllString(filepath.Base(filename), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "image"
	}
	return fmt.Sprintf("%s_%d_%s_%s", ownerID, unix, nonce, name)
}
