package appointment

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepository_AssignsIDsOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first, _ := repo.CreateAppointment(ctx, validAppointmentAt(time.Now()))
	second, _ := repo.CreateAppointment(ctx, validAppointmentAt(time.Now()))
	if first != 1 || second != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first, second)
	}

	got, err := repo.GetAppointmentByID(ctx, second)
	if err != nil || got.ID != second {
		t.Fatalf("expected appointment %d, got %+v, %v", second, got, err)
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if _, err := repo.GetAppointmentByID(ctx, 1); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("get: expected not found, got %v", err)
	}
	if err := repo.UpdateAppointmentStatus(ctx, 1, StatusPass); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("update: expected not found, got %v", err)
	}
	if _, err := repo.DeleteAppointment(ctx, 1); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("delete: expected not found, got %v", err)
	}
}
