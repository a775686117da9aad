//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/pet"
	"pet-adoption/internal/infra/memory"
	"pet-adoption/internal/testutil/builder"
	"pet-adoption/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdoptionFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.register(t, builder.NewOwnerBuilder())
	adopter := f.register(t, builder.NewAdopterBuilder())
	petID := f.addPet(t, owner.ID, builder.NewPetBuilder())

	reqID, err := f.adoption.CreateRequest(ctx, adopter.ID, petID, "I have a big garden")
	require.NoError(t, err)

	status, err := f.adoption.DecideRequest(ctx, owner.ID, reqID, "approve")
	require.NoError(t, err)
	assert.Equal(t, adoption.StatusApproved, status)

	result, err := f.adoption.PayRequest(ctx, adopter.ID, reqID, commands.PayInput{Amount: "50.0", Mode: "card"})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), result.Amount.Cents())
	assert.Equal(t, petID, result.PetID)
	assert.Regexp(t, `^MOCK-`, result.Reference)

	snap, err := f.store.CommandReads().PetByID(ctx, petID)
	require.NoError(t, err)
	assert.Equal(t, pet.StatusAdopted, snap.Status)

	_, err = f.store.CommandReads().RequestByID(ctx, reqID)
	assert.Error(t, err, "paid request is removed")

	var topics []string
	for _, e := range f.events(t) {
		topics = append(topics, e.Type)
		assert.Equal(t, reqID, e.RequestID)
		assert.Equal(t, owner.ID, e.OwnerID)
	}
	assert.ElementsMatch(t, []string{
		commands.TopicRequestCreated,
		commands.TopicRequestDecided,
		commands.TopicCompleted,
	}, topics)
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("保留中の重複は拒否し1件のまま", func(t *testing.T) {
		f := newFixture(t)
		owner := f.register(t, builder.NewOwnerBuilder())
		adopter := f.register(t, builder.NewAdopterBuilder())
		petID := f.addPet(t, owner.ID, builder.NewPetBuilder())

		_, err := f.adoption.CreateRequest(ctx, adopter.ID, petID, "")
		require.NoError(t, err)
		_, err = f.adoption.CreateRequest(ctx, adopter.ID, petID, "again")
		assert.ErrorIs(t, err, commands.ErrDuplicatePendingRequest)
		assert.Len(t, f.events(t), 1)
	})

	t.Run("却下後は再申請できる", func(t *testing.T) {
		f := newFixture(t)
		owner := f.register(t, builder.NewOwnerBuilder())
		adopter := f.register(t, builder.NewAdopterBuilder())
		petID := f.addPet(t, owner.ID, builder.NewPetBuilder())

		reqID, err := f.adoption.CreateRequest(ctx, adopter.ID, petID, "")
		require.NoError(t, err)
		_, err = f.adoption.DecideRequest(ctx, owner.ID, reqID, "reject")
		require.NoError(t, err)

		_, err = f.adoption.CreateRequest(ctx, adopter.ID, petID, "second try")
		assert.NoError(t, err)
	})

	t.Run("存在しないペットNG", func(t *testing.T) {
		f := newFixture(t)
		adopter := f.register(t, builder.NewAdopterBuilder())

		_, err := f.adoption.CreateRequest(ctx, adopter.ID, uuid.New(), "")
		assert.ErrorIs(t, err, commands.ErrPetNotFound)
	})

	t.Run("譲渡済みペットNG", func(t *testing.T) {
		f := newFixture(t)
		owner := f.register(t, builder.NewOwnerBuilder())
		adopter := f.register(t, builder.NewAdopterBuilder())
		late := f.register(t, builder.NewAdopterBuilder().WithEmail("late@example.com"))
		petID := f.addPet(t, owner.ID, builder.NewPetBuilder())
		reqID := f.approvedRequest(t, owner.ID, adopter.ID, petID)
		_, err := f.adoption.PayRequest(ctx, adopter.ID, reqID, commands.PayInput{})
		require.NoError(t, err)

		_, err = f.adoption.CreateRequest(ctx, late.ID, petID, "")
		assert.ErrorIs(t, err, commands.ErrPetNotAvailable)
	})
}

func TestDecideRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.register(t, builder.NewOwnerBuilder())
	other := f.register(t, builder.NewOwnerBuilder().WithEmail("other@example.com"))
	adopter := f.register(t, builder.NewAdopterBuilder())
	petID := f.addPet(t, owner.ID, builder.NewPetBuilder())
	reqID, err := f.adoption.CreateRequest(ctx, adopter.ID, petID, "")
	require.NoError(t, err)

	t.Run("他の飼い主は見つからない", func(t *testing.T) {
		_, err := f.adoption.DecideRequest(ctx, other.ID, reqID, "approve")
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("無効な決定NG", func(t *testing.T) {
		_, err := f.adoption.DecideRequest(ctx, owner.ID, reqID, "maybe")
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("存在しないリクエストNG", func(t *testing.T) {
		_, err := f.adoption.DecideRequest(ctx, owner.ID, uuid.New(), "approve")
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("決定済みの再決定NG", func(t *testing.T) {
		status, err := f.adoption.DecideRequest(ctx, owner.ID, reqID, "Rejected")
		require.NoError(t, err)
		assert.Equal(t, adoption.StatusRejected, status)

		_, err = f.adoption.DecideRequest(ctx, owner.ID, reqID, "approve")
		assert.ErrorIs(t, err, commands.ErrRequestAlreadyDecided)
	})
}

func TestPayRequest(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, uuid.UUID, uuid.UUID, uuid.UUID, uuid.UUID) {
		f := newFixture(t)
		owner := f.register(t, builder.NewOwnerBuilder())
		adopter := f.register(t, builder.NewAdopterBuilder())
		petID := f.addPet(t, owner.ID, builder.NewPetBuilder())
		return f, owner.ID, adopter.ID, petID, f.approvedRequest(t, owner.ID, adopter.ID, petID)
	}

	t.Run("金額省略時は掲載価格", func(t *testing.T) {
		f, _, adopterID, _, reqID := setup(t)

		result, err := f.adoption.PayRequest(ctx, adopterID, reqID, commands.PayInput{})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), result.Amount.Cents())
	})

	t.Run("同じリクエストの二重支払NG", func(t *testing.T) {
		f, _, adopterID, _, reqID := setup(t)

		_, err := f.adoption.PayRequest(ctx, adopterID, reqID, commands.PayInput{})
		require.NoError(t, err)
		_, err = f.adoption.PayRequest(ctx, adopterID, reqID, commands.PayInput{})
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("他の里親のリクエストNG", func(t *testing.T) {
		f, _, _, _, reqID := setup(t)
		stranger := f.register(t, builder.NewAdopterBuilder().WithEmail("stranger@example.com"))

		_, err := f.adoption.PayRequest(ctx, stranger.ID, reqID, commands.PayInput{})
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("未承認リクエストNG", func(t *testing.T) {
		f, ownerID, _, _, _ := setup(t)
		second := f.register(t, builder.NewAdopterBuilder().WithEmail("second@example.com"))
		otherPet := f.addPet(t, ownerID, builder.NewPetBuilder().WithName("Mittens"))
		reqID, err := f.adoption.CreateRequest(ctx, second.ID, otherPet, "")
		require.NoError(t, err)

		_, err = f.adoption.PayRequest(ctx, second.ID, reqID, commands.PayInput{})
		assert.ErrorIs(t, err, commands.ErrRequestNotApproved)
	})

	t.Run("不正な金額NGでロールバック", func(t *testing.T) {
		f, _, adopterID, petID, reqID := setup(t)

		_, err := f.adoption.PayRequest(ctx, adopterID, reqID, commands.PayInput{Amount: "12.345"})
		assert.ErrorIs(t, err, commands.ErrValidation)

		snap, err := f.store.CommandReads().PetByID(ctx, petID)
		require.NoError(t, err)
		assert.Equal(t, pet.StatusAvailable, snap.Status)
		_, err = f.store.CommandReads().RequestByID(ctx, reqID)
		assert.NoError(t, err, "request survives a failed payment")
	})

	t.Run("符号の紛れた金額NG", func(t *testing.T) {
		f, _, adopterID, petID, reqID := setup(t)

		for _, amount := range []string{"+-5", "1.-5", "0.-5", "1.+5"} {
			_, err := f.adoption.PayRequest(ctx, adopterID, reqID, commands.PayInput{Amount: amount})
			assert.ErrorIs(t, err, commands.ErrValidation, amount)
		}

		snap, err := f.store.CommandReads().PetByID(ctx, petID)
		require.NoError(t, err)
		assert.Equal(t, pet.StatusAvailable, snap.Status)
	})

	t.Run("書き込み途中の失敗で全てロールバック", func(t *testing.T) {
		f, _, adopterID, petID, reqID := setup(t)
		uow := &failingUoW{UnitOfWork: f.store, err: errors.New("connection lost")}
		failing := commands.NewAdoptionCommands(uow, f.clock)

		_, err := failing.PayRequest(ctx, adopterID, reqID, commands.PayInput{})
		assert.ErrorIs(t, err, commands.ErrStoreFailure)
		require.True(t, uow.paymentWritten, "failure happens after the payment insert")

		snap, err := f.store.CommandReads().PetByID(ctx, petID)
		require.NoError(t, err)
		assert.Equal(t, pet.StatusAvailable, snap.Status)
		_, err = f.store.CommandReads().RequestByID(ctx, reqID)
		assert.NoError(t, err, "request survives the rolled back payment")

		history, err := memory.NewAdoptionReadStore(f.store).ListHistory(ctx, adopterID)
		require.NoError(t, err)
		assert.Empty(t, history)
		for _, e := range f.events(t) {
			assert.NotEqual(t, commands.TopicCompleted, e.Type)
		}

		// Nothing from the failed attempt lingers, so the same request pays cleanly.
		result, err := f.adoption.PayRequest(ctx, adopterID, reqID, commands.PayInput{})
		require.NoError(t, err)
		assert.Equal(t, petID, result.PetID)
	})

	t.Run("無効な支払方法NG", func(t *testing.T) {
		f, _, adopterID, _, reqID := setup(t)

		_, err := f.adoption.PayRequest(ctx, adopterID, reqID, commands.PayInput{Mode: "barter"})
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("同じペットの2件目の支払は譲渡済みNG", func(t *testing.T) {
		f, ownerID, adopterID, petID, reqID := setup(t)
		rival := f.register(t, builder.NewAdopterBuilder().WithEmail("rival@example.com"))
		rivalReq := f.approvedRequest(t, ownerID, rival.ID, petID)

		_, err := f.adoption.PayRequest(ctx, adopterID, reqID, commands.PayInput{})
		require.NoError(t, err)
		_, err = f.adoption.PayRequest(ctx, rival.ID, rivalReq, commands.PayInput{})
		assert.ErrorIs(t, err, commands.ErrPetNotAvailable)
	})

	t.Run("同時支払は1件だけ成功", func(t *testing.T) {
		f, ownerID, adopterID, petID, reqID := setup(t)
		rival := f.register(t, builder.NewAdopterBuilder().WithEmail("rival@example.com"))
		rivalReq := f.approvedRequest(t, ownerID, rival.ID, petID)

		type attempt struct {
			adopterID uuid.UUID
			requestID uuid.UUID
		}
		attempts := []attempt{{adopterID, reqID}, {rival.ID, rivalReq}}
		errs := make([]error, len(attempts))

		var wg sync.WaitGroup
		for i, a := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = f.adoption.PayRequest(ctx, a.adopterID, a.requestID, commands.PayInput{})
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, commands.ErrPetNotAvailable)
		}
		assert.Equal(t, 1, succeeded)
	})
}
