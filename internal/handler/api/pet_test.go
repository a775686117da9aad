//go:build unit

package api_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"pet-adoption/internal/pkg/cookie"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/flash"
	"pet-adoption/internal/testutil/builder"
	"pet-adoption/internal/testutil/httptest"
	"pet-adoption/internal/usecase/commands"
	"pet-adoption/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PetHandlerTestSuite struct {
	handlerSuite
}

func TestPetHandlerSuite(t *testing.T) {
	suite.Run(t, new(PetHandlerTestSuite))
}

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func (s *PetHandlerTestSuite) TestOwnerRoutesRequireOwner() {
	s.Run("anonymous visitors are sent to login", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/dashboard", nil)

		httptest.AssertNotice(s.T(), w, "/login", flash.LevelWarning, "Please login first")
	})

	s.Run("adopters are denied", func() {
		_, cookies := s.loginAdopter()

		w := httptest.PerformForm(s.T(), s.router, "/owner/pet/add", builder.NewPetBuilder().BuildForm(), cookies)

		httptest.AssertNotice(s.T(), w, "/", flash.LevelDanger, "Access denied")
	})

	s.Run("a forged session is cleared and treated as anonymous", func() {
		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: "forged.token.value"}}

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/requests", cookies)

		httptest.AssertNotice(s.T(), w, "/login", flash.LevelWarning, "Please login first")
		session := httptest.FindCookie(w, cookie.SessionCookieName)
		s.Require().NotNil(session)
		s.Empty(session.Value)
	})
}

func (s *PetHandlerTestSuite) TestOwnerDashboard() {
	ownerID, cookies := s.loginOwner()

	s.Run("success", func() {
		view := &queries.OwnerDashboardView{
			Available: []*queries.PetView{builder.NewPetBuilder().BuildView(ownerID)},
			Sold:      []*queries.SoldPetView{{PetID: uuid.New(), PetName: "Mochi", AdopterName: "Alice Adopter"}},
		}
		s.catalogQueries.EXPECT().OwnerDashboard(gomock.Any(), ownerID).Return(view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/dashboard", cookies)

		page := httptest.AssertPage[queries.OwnerDashboardView](s.T(), w, http.StatusOK)
		s.Len(page.Data.Available, 1)
		s.Require().Len(page.Data.Sold, 1)
		s.Equal("Mochi", page.Data.Sold[0].PetName)
		s.Require().NotNil(page.Principal)
		s.Equal("owner", page.Principal.Kind)
	})

	s.Run("error: store failure", func() {
		s.catalogQueries.EXPECT().OwnerDashboard(gomock.Any(), ownerID).Return(nil, errs.New("db down")).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/dashboard", cookies)

		httptest.AssertPage[queries.OwnerDashboardView](s.T(), w, http.StatusInternalServerError)
	})
}

func (s *PetHandlerTestSuite) TestAddPet() {
	ownerID, cookies := s.loginOwner()
	pb := builder.NewPetBuilder()

	s.Run("success: with an image", func() {
		s.petCommands.EXPECT().AddPet(gomock.Any(), ownerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.AddPetInput) (uuid.UUID, error) {
				s.Equal(pb.Name, in.Name)
				s.Equal(pb.Type, in.Species)
				s.Equal(pb.Price, in.Price)
				s.Require().NotNil(in.Image)
				s.Equal("biscuit.png", in.Image.Filename)
				s.Equal(int64(len(pngBytes)), in.Image.Size)
				body, err := io.ReadAll(in.Image.Body)
				s.Require().NoError(err)
				s.Equal(pngBytes, body)
				return uuid.New(), nil
			}).Times(1)

		file := &httptest.File{Field: "image", Filename: "biscuit.png", Content: pngBytes}
		w := httptest.PerformMultipart(s.T(), s.router, "/owner/pet/add", pb.BuildForm(), file, cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelSuccess, "Pet added successfully!")
	})

	s.Run("success: without an image", func() {
		s.petCommands.EXPECT().AddPet(gomock.Any(), ownerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.AddPetInput) (uuid.UUID, error) {
				s.Nil(in.Image)
				s.Equal(pb.Description, in.Description)
				return uuid.New(), nil
			}).Times(1)

		w := httptest.PerformMultipart(s.T(), s.router, "/owner/pet/add", pb.BuildForm(), nil, cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelSuccess, "Pet added successfully!")
	})

	s.Run("error: use case failures map to notices", func() {
		cases := []struct {
			name     string
			err      error
			location string
			level    flash.Level
			message  string
		}{
			{
				name:     "unsupported image",
				err:      commands.ErrUnsupportedImage,
				location: "/owner/pet/add",
				level:    flash.LevelDanger,
				message:  "Invalid file format. Use PNG, JPG, JPEG, GIF, or WebP",
			},
			{
				name:     "image too large",
				err:      commands.ErrImageTooLarge,
				location: "/owner/pet/add",
				level:    flash.LevelDanger,
				message:  "Image is too large",
			},
			{
				name:     "validation",
				err:      errs.Mark(errs.New("name is required"), commands.ErrValidation),
				location: "/owner/pet/add",
				level:    flash.LevelDanger,
				message:  "Name is required",
			},
			{
				name:     "store failure",
				err:      commands.ErrStoreFailure,
				location: "/owner/pet/add",
				level:    flash.LevelDanger,
				message:  "Something went wrong",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.petCommands.EXPECT().AddPet(gomock.Any(), ownerID, gomock.Any()).
					Return(uuid.Nil, tc.err).Times(1)

				file := &httptest.File{Field: "image", Filename: "biscuit.bmp", Content: pngBytes}
				w := httptest.PerformMultipart(s.T(), s.router, "/owner/pet/add", pb.BuildForm(), file, cookies)

				httptest.AssertNotice(s.T(), w, tc.location, tc.level, tc.message)
			})
		}
	})
}

func (s *PetHandlerTestSuite) TestEditPetPage() {
	ownerID, cookies := s.loginOwner()

	s.Run("success", func() {
		view := builder.NewPetBuilder().BuildView(ownerID)
		s.catalogQueries.EXPECT().GetOwnedPet(gomock.Any(), ownerID, view.ID).Return(view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/pet/edit/"+view.ID.String(), cookies)

		type editData struct {
			Form formData        `json:"form"`
			Pet  queries.PetView `json:"pet"`
		}
		page := httptest.AssertPage[editData](s.T(), w, http.StatusOK)
		s.Equal("/owner/pet/edit/"+view.ID.String(), page.Data.Form.Action)
		s.Equal(view.Name, page.Data.Pet.Name)
	})

	s.Run("error: pet of another owner", func() {
		id := uuid.New()
		s.catalogQueries.EXPECT().GetOwnedPet(gomock.Any(), ownerID, id).Return(nil, queries.ErrPetNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/pet/edit/"+id.String(), cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelDanger, "Pet not found")
	})
}

func (s *PetHandlerTestSuite) TestEditPet() {
	ownerID, cookies := s.loginOwner()
	petID := uuid.New()
	path := "/owner/pet/edit/" + petID.String()

	s.Run("success: only posted fields are applied", func() {
		s.petCommands.EXPECT().EditPet(gomock.Any(), ownerID, petID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, in commands.EditPetInput) error {
				s.Require().NotNil(in.Name)
				s.Equal("Rex", *in.Name)
				s.Require().NotNil(in.Price)
				s.Equal("75.00", *in.Price)
				s.Nil(in.Breed)
				s.Nil(in.Age)
				s.Nil(in.Species)
				s.Nil(in.Image)
				return nil
			}).Times(1)

		form := url.Values{"name": {"Rex"}, "price": {"75.00"}}
		w := httptest.PerformForm(s.T(), s.router, path, form, cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelSuccess, "Pet updated successfully!")
	})

	s.Run("success: a posted empty field is still applied", func() {
		s.petCommands.EXPECT().EditPet(gomock.Any(), ownerID, petID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, in commands.EditPetInput) error {
				s.Require().NotNil(in.Description)
				s.Empty(*in.Description)
				return nil
			}).Times(1)

		w := httptest.PerformForm(s.T(), s.router, path, url.Values{"description": {""}}, cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelSuccess, "Pet updated successfully!")
	})

	s.Run("error: unknown pet", func() {
		s.petCommands.EXPECT().EditPet(gomock.Any(), ownerID, petID, gomock.Any()).
			Return(commands.ErrPetNotFound).Times(1)

		w := httptest.PerformForm(s.T(), s.router, path, url.Values{"name": {"Rex"}}, cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelDanger, "Pet not found")
	})

	s.Run("error: bad image goes back to the edit page", func() {
		s.petCommands.EXPECT().EditPet(gomock.Any(), ownerID, petID, gomock.Any()).
			Return(commands.ErrUnsupportedImage).Times(1)

		file := &httptest.File{Field: "image", Filename: "notes.txt", Content: []byte("hello")}
		w := httptest.PerformMultipart(s.T(), s.router, path, url.Values{}, file, cookies)

		httptest.AssertNotice(s.T(), w, path, flash.LevelDanger, "Invalid file format. Use PNG, JPG, JPEG, GIF, or WebP")
	})

	s.Run("error: malformed id", func() {
		w := httptest.PerformForm(s.T(), s.router, "/owner/pet/edit/42", url.Values{"name": {"Rex"}}, cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelDanger, "Pet not found")
	})
}

func (s *PetHandlerTestSuite) TestDeletePet() {
	ownerID, cookies := s.loginOwner()
	petID := uuid.New()
	path := "/owner/pet/delete/" + petID.String()

	s.Run("success", func() {
		s.petCommands.EXPECT().DeletePet(gomock.Any(), ownerID, petID).Return(nil).Times(1)

		w := httptest.PerformForm(s.T(), s.router, path, url.Values{}, cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelSuccess, "Pet deleted successfully!")
	})

	s.Run("error: pets with history are kept", func() {
		s.petCommands.EXPECT().DeletePet(gomock.Any(), ownerID, petID).Return(commands.ErrPetHasHistory).Times(1)

		w := httptest.PerformForm(s.T(), s.router, path, url.Values{}, cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelWarning, "Pet has an adoption history and cannot be deleted")
	})

	s.Run("error: unknown pet", func() {
		s.petCommands.EXPECT().DeletePet(gomock.Any(), ownerID, petID).Return(commands.ErrPetNotFound).Times(1)

		w := httptest.PerformForm(s.T(), s.router, path, url.Values{}, cookies)

		httptest.AssertNotice(s.T(), w, "/owner/dashboard", flash.LevelDanger, "Pet not found")
	})
}
