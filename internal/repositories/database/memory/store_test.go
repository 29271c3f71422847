package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	"github.com/SscSPs/fuel_station_app/internal/repositories/database/memory"
)

var t0 = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func openShift(id, worker string, start time.Time) domain.Shift {
	return domain.Shift{ShiftID: id, CompanyID: "c1", WorkerID: worker, TerminalID: "t1", StartTime: start}
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		require.NoError(t, tx.SaveShift(ctx, openShift("s1", "w1", t0)))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.ReadOnly(ctx, func(r portsrepo.LedgerReader) error {
		_, err := r.FindShiftByID(ctx, "s1")
		return err
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveShift_OneOpenShiftPerWorker(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := store.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		require.NoError(t, tx.SaveShift(ctx, openShift("s1", "w1", t0)))
		return tx.SaveShift(ctx, openShift("s2", "w1", t0.Add(time.Hour)))
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	err = store.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		require.NoError(t, tx.SaveShift(ctx, openShift("s1", "w1", t0)))
		require.NoError(t, tx.CloseShift(ctx, "s1", t0.Add(time.Hour), "done", "w1"))
		return tx.SaveShift(ctx, openShift("s2", "w1", t0.Add(2*time.Hour)))
	})
	assert.NoError(t, err)

	err = store.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		return tx.CloseShift(ctx, "s1", t0.Add(3*time.Hour), "", "w1")
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReadings_OpenUniquenessAndForceClose(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	closing := decimal.NewFromInt(150)
	price := decimal.NewFromInt(2)
	expected := decimal.NewFromInt(100)

	err := store.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		require.NoError(t, tx.SaveShift(ctx, openShift("s1", "w1", t0)))
		require.NoError(t, tx.SaveReading(ctx, domain.MeterReading{ReadingID: "r1", CompanyID: "c1", PumpID: "p1", ShiftID: "s1", Opening: decimal.NewFromInt(100), CreatedAt: t0}))
		err := tx.SaveReading(ctx, domain.MeterReading{ReadingID: "r2", CompanyID: "c1", PumpID: "p1", ShiftID: "s1", Opening: decimal.NewFromInt(100), CreatedAt: t0})
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		closedAt := t0.Add(time.Hour)
		require.NoError(t, tx.CloseReading(ctx, domain.MeterReading{ReadingID: "r1", Closing: &closing, PricePerLiter: &price, ExpectedAmount: &expected, ClosedAt: &closedAt}))
		assert.ErrorIs(t, tx.CloseReading(ctx, domain.MeterReading{ReadingID: "r1", Closing: &closing}), apperrors.ErrNotFound)

		require.NoError(t, tx.SaveReading(ctx, domain.MeterReading{ReadingID: "r3", CompanyID: "c1", PumpID: "p1", ShiftID: "s1", Opening: closing, CreatedAt: t0.Add(time.Minute)}))
		require.NoError(t, tx.SaveReading(ctx, domain.MeterReading{ReadingID: "r4", CompanyID: "c1", PumpID: "p2", ShiftID: "s1", Opening: decimal.Zero, CreatedAt: t0.Add(2 * time.Minute)}))
		return nil
	})
	require.NoError(t, err)

	err = store.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		last, err := tx.LastClosingReading(ctx, "p1")
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.True(t, last.Equal(closing))

		none, err := tx.LastClosingReading(ctx, "p2")
		require.NoError(t, err)
		assert.Nil(t, none)

		forced, err := tx.ForceCloseOpenReadings(ctx, "s1", t0.Add(8*time.Hour))
		require.NoError(t, err)
		require.Len(t, forced, 2)
		assert.Equal(t, "r3", forced[0].ReadingID)
		assert.Equal(t, "r4", forced[1].ReadingID)
		for _, r := range forced {
			assert.True(t, r.ForceClosed)
			assert.True(t, r.LitersSold().IsZero())
			assert.True(t, r.ExpectedAmount.IsZero())
		}
		return nil
	})
	require.NoError(t, err)
}

func TestCollections_VerifyOnceAndUniqueReference(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	at := t0.Add(time.Hour)

	err := store.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		require.NoError(t, tx.SaveCashSubmission(ctx, domain.CashSubmission{SubmissionID: "c1", ShiftID: "s1", Amount: decimal.NewFromInt(10)}))
		require.NoError(t, tx.VerifyCashSubmission(ctx, "c1", "v1", at))
		assert.ErrorIs(t, tx.VerifyCashSubmission(ctx, "c1", "v2", at), apperrors.ErrNotFound)

		require.NoError(t, tx.SaveElectronicPayment(ctx, domain.ElectronicPayment{PaymentID: "e1", ReferenceNumber: "REF", Status: domain.PaymentPending}))
		assert.ErrorIs(t, tx.SaveElectronicPayment(ctx, domain.ElectronicPayment{PaymentID: "e2", ReferenceNumber: "REF", Status: domain.PaymentPending}), apperrors.ErrConflict)
		require.NoError(t, tx.SaveElectronicPayment(ctx, domain.ElectronicPayment{PaymentID: "e3", Status: domain.PaymentPending}))
		require.NoError(t, tx.SaveElectronicPayment(ctx, domain.ElectronicPayment{PaymentID: "e4", Status: domain.PaymentPending}))

		used, err := tx.ReferenceNumberExists(ctx, "REF")
		require.NoError(t, err)
		assert.True(t, used)
		used, err = tx.ReferenceNumberExists(ctx, "")
		require.NoError(t, err)
		assert.False(t, used)

		require.NoError(t, tx.DecideElectronicPayment(ctx, "e1", domain.PaymentRejected, "v1", at))
		assert.ErrorIs(t, tx.DecideElectronicPayment(ctx, "e1", domain.PaymentVerified, "v1", at), apperrors.ErrNotFound)

		require.NoError(t, tx.SaveHandover(ctx, domain.CashHandover{HandoverID: "h2", ShiftID: "s1", FromUserID: "w1", ToUserID: "w2"}))
		require.NoError(t, tx.SaveHandover(ctx, domain.CashHandover{HandoverID: "h1", ShiftID: "s1", FromUserID: "w1", ToUserID: "w2"}))
		require.NoError(t, tx.SaveHandover(ctx, domain.CashHandover{HandoverID: "h3", ShiftID: "s9", FromUserID: "w1", ToUserID: "w2"}))
		require.NoError(t, tx.VerifyHandover(ctx, "h2", "w2", at))

		ids, err := tx.AutoVerifyHandovers(ctx, "s1", "w1", at)
		require.NoError(t, err)
		assert.Equal(t, []string{"h1"}, ids)

		h, err := tx.FindHandoverByID(ctx, "h1")
		require.NoError(t, err)
		assert.True(t, h.Verified)
		assert.True(t, h.AutoVerified)
		return nil
	})
	require.NoError(t, err)
}

func TestListReadings_KeysetPages(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		// Two readings share a timestamp; the id breaks the tie.
		for i, id := range []string{"b", "a", "c"} {
			at := t0
			if i == 2 {
				at = t0.Add(time.Minute)
			}
			if err := tx.SaveReading(ctx, domain.MeterReading{ReadingID: id, CompanyID: "c1", PumpID: "p-" + id, ShiftID: "s1", CreatedAt: at}); err != nil {
				return err
			}
		}
		return nil
	}))

	var seen []string
	var token *string
	for {
		var page []domain.MeterReading
		err := store.ReadOnly(ctx, func(r portsrepo.LedgerReader) error {
			var err error
			page, token, err = r.ListReadings(ctx, domain.ReadingFilter{CompanyID: "c1", Limit: 1, NextToken: token})
			return err
		})
		require.NoError(t, err)
		for _, r := range page {
			seen = append(seen, r.ReadingID)
		}
		if token == nil {
			break
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestPumpRegistry(t *testing.T) {
	reg := memory.NewPumpRegistry(domain.Pump{PumpID: "p1", PricePerLiter: decimal.NewFromInt(2)})

	_, err := reg.GetPump(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	reg.SetPrice("p1", decimal.NewFromInt(3))
	p, err := reg.GetPump(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, p.PricePerLiter.Equal(decimal.NewFromInt(3)))
}
