package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mosque_backend/internals/constants"
	donationModel "mosque_backend/internals/features/donations/donations/model"
	donationService "mosque_backend/internals/features/donations/donations/service"
	"mosque_backend/internals/features/donations/drafts/model"
)

var (
	ErrDraftNotFound = errors.New("draft not found")
	// ErrDraftClosed: the draft was already committed; every further
	// mutation and hold attempt is refused.
	ErrDraftClosed = errors.New("draft is already committed")
	// ErrNotCommittable: a required wizard field is still missing.
	ErrNotCommittable = errors.New("draft is missing required fields")
)

// DraftStore is the persistence surface for in-progress drafts.
type DraftStore interface {
	Create(ctx context.Context, draft *model.DonationDraft) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DonationDraft, error)
	Save(ctx context.Context, draft *model.DonationDraft) error
	Delete(ctx context.Context, draft *model.DonationDraft) error
	// Commit persists the ledger entry and the closed draft together;
	// either both writes land or neither does.
	Commit(ctx context.Context, draft *model.DonationDraft, entry *donationModel.Donation) error
}

// Session carries the authenticated donor, when there is one.
type Session struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// DraftService drives the wizard: step mutations, the hold-to-confirm
// gesture, and the single commit into the ledger.
type DraftService struct {
	Drafts       DraftStore
	HoldDuration time.Duration
	Now          func() time.Time
}

func NewDraftService(db *gorm.DB) *DraftService {
	return &DraftService{
		Drafts:       NewGormDraftStore(db),
		HoldDuration: DefaultHoldDuration,
		Now:          time.Now,
	}
}

// Start creates a draft from the type-selection step. The donor and the
// anonymous flag are captured here, once: with a session the donation
// carries the member's name; without one it is a guest (anonymous)
// donation.
func (s *DraftService) Start(ctx context.Context, session *Session, donationType, month string) (*model.DonationDraft, error) {
	draft := &model.DonationDraft{DraftStatus: model.StatusDraft}

	if session != nil {
		uid := session.UserID
		draft.DraftUserID = &uid
		draft.DraftDonorName = session.Name
		draft.DraftDonorEmail = session.Email
		draft.DraftAnonymous = false
	} else {
		draft.DraftDonorName = constants.GuestDonorName
		draft.DraftAnonymous = true
	}

	if err := ApplyTypeStep(draft, donationType, month, s.Now()); err != nil {
		return nil, err
	}

	if err := s.Drafts.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get re-populates a step from the carried values; no side effects.
func (s *DraftService) Get(ctx context.Context, id uuid.UUID) (*model.DonationDraft, error) {
	return s.load(ctx, id)
}

func (s *DraftService) SetAmount(ctx context.Context, id uuid.UUID, amountText string) (*model.DonationDraft, error) {
	return s.mutate(ctx, id, func(d *model.DonationDraft) error {
		return ApplyAmountStep(d, amountText)
	})
}

func (s *DraftService) SetMessage(ctx context.Context, id uuid.UUID, message string) (*model.DonationDraft, error) {
	return s.mutate(ctx, id, func(d *model.DonationDraft) error {
		ApplyMessageStep(d, message)
		return nil
	})
}

func (s *DraftService) SetPaymentMethod(ctx context.Context, id uuid.UUID, method string) (*model.DonationDraft, error) {
	return s.mutate(ctx, id, func(d *model.DonationDraft) error {
		return ApplyPaymentStep(d, method)
	})
}

// Abandon discards an uncommitted draft (back navigation / flow exit).
func (s *DraftService) Abandon(ctx context.Context, id uuid.UUID) error {
	draft, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if draft.DraftStatus == model.StatusCommitted {
		return ErrDraftClosed
	}
	return s.Drafts.Delete(ctx, draft)
}

// Press starts (or keeps) the confirmation hold. Pressing while already
// holding is a no-op; pressing an incomplete draft is refused.
func (s *DraftService) Press(ctx context.Context, id uuid.UUID) (*model.DonationDraft, error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.DraftStatus == model.StatusCommitted {
		return nil, ErrDraftClosed
	}
	if !draft.Committable() {
		return nil, ErrNotCommittable
	}
	if draft.DraftHoldStartedAt != nil {
		// already holding
		return draft, nil
	}

	started := s.Now()
	draft.DraftHoldStartedAt = &started
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Release ends the hold. A full hold commits the draft into the ledger
// exactly once and returns the new entry; an early release resets the
// hold with no side effects. Releasing while idle is a no-op.
func (s *DraftService) Release(ctx context.Context, id uuid.UUID) (*model.DonationDraft, *donationModel.Donation, error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if draft.DraftStatus == model.StatusCommitted {
		return nil, nil, ErrDraftClosed
	}
	if draft.DraftHoldStartedAt == nil {
		return draft, nil, nil
	}

	h := Resume(*draft.DraftHoldStartedAt, s.HoldDuration)
	committed := h.Release(s.Now())

	draft.DraftHoldStartedAt = nil
	if !committed {
		if err := s.Drafts.Save(ctx, draft); err != nil {
			return nil, nil, err
		}
		return draft, nil, nil
	}

	entry := buildLedgerEntry(draft, s.Now())
	draft.DraftStatus = model.StatusCommitted
	if err := s.Drafts.Commit(ctx, draft, entry); err != nil {
		return nil, nil, err
	}
	return draft, entry, nil
}

// Progress reports the current hold fraction for the progress bar.
func (s *DraftService) Progress(ctx context.Context, id uuid.UUID) (float64, string, error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return 0, "", err
	}
	if draft.DraftStatus == model.StatusCommitted {
		return 1, HoldCommitted.String(), nil
	}
	if draft.DraftHoldStartedAt == nil {
		return 0, HoldIdle.String(), nil
	}
	h := Resume(*draft.DraftHoldStartedAt, s.HoldDuration)
	return h.Progress(s.Now()), h.State().String(), nil
}

/* ==========================
   Internals
========================== */

func (s *DraftService) load(ctx context.Context, id uuid.UUID) (*model.DonationDraft, error) {
	draft, err := s.Drafts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	return draft, nil
}

func (s *DraftService) mutate(ctx context.Context, id uuid.UUID, apply func(*model.DonationDraft) error) (*model.DonationDraft, error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.DraftStatus == model.StatusCommitted {
		return nil, ErrDraftClosed
	}
	if err := apply(draft); err != nil {
		return nil, err
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func buildLedgerEntry(draft *model.DonationDraft, now time.Time) *donationModel.Donation {
	donor := draft.DraftDonorName
	if draft.DraftAnonymous {
		donor = constants.AnonymousDonorName
	}
	return &donationModel.Donation{
		DonationOrderID:       fmt.Sprintf("DONATION-%d", now.UnixNano()),
		DonationUserID:        draft.DraftUserID,
		DonationDonorName:     donor,
		DonationType:          draft.DraftType,
		DonationMonth:         draft.DraftMonth,
		DonationAmount:        draft.DraftAmount,
		DonationMessage:       draft.DraftMessage,
		DonationAnonymous:     draft.DraftAnonymous,
		DonationPaymentMethod: draft.DraftPaymentMethod,
	}
}

/* ==========================
   GORM store
========================== */

type GormDraftStore struct {
	DB *gorm.DB
}

func NewGormDraftStore(db *gorm.DB) *GormDraftStore {
	return &GormDraftStore{DB: db}
}

func (s *GormDraftStore) Create(ctx context.Context, draft *model.DonationDraft) error {
	return s.DB.WithContext(ctx).Create(draft).Error
}

func (s *GormDraftStore) FindByID(ctx context.Context, id uuid.UUID) (*model.DonationDraft, error) {
	var draft model.DonationDraft
	if err := s.DB.WithContext(ctx).First(&draft, "draft_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *GormDraftStore) Save(ctx context.Context, draft *model.DonationDraft) error {
	return s.DB.WithContext(ctx).Save(draft).Error
}

func (s *GormDraftStore) Delete(ctx context.Context, draft *model.DonationDraft) error {
	return s.DB.WithContext(ctx).Delete(draft).Error
}

// Commit appends the ledger entry and closes the draft in one database
// transaction. Without this a failure between the two writes would leave
// the entry in the ledger with the draft still open, and a retried
// release would append a second entry.
func (s *GormDraftStore) Commit(ctx context.Context, draft *model.DonationDraft, entry *donationModel.Donation) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := donationService.NewLedgerService(tx).Append(ctx, entry); err != nil {
			return err
		}
		return tx.Save(draft).Error
	})
}
