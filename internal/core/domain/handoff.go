package domain

import (
	"github.com/google/uuid"
)

// HandoffStatus is the lifecycle of a physical donation.
type HandoffStatus string

const (
	HandoffAvailable     HandoffStatus = "Available"
	HandoffClaimed       HandoffStatus = "Claimed"
	HandoffPendingPickup HandoffStatus = "PendingPickup"
	HandoffCompleted     HandoffStatus = "Completed"
	HandoffRecycled      HandoffStatus = "Recycled"
)

// InHandoff reports whether the donation has a claimant and is awaiting
// confirmations.
func (s HandoffStatus) InHandoff() bool {
	return s == HandoffClaimed || s == HandoffPendingPickup
}

// PhysicalDonation is the subset of a food donation involved in the handoff.
type PhysicalDonation struct {
	ID                uuid.UUID     `json:"id"`
	DonorID           uuid.UUID     `json:"donor_id"`
	ClaimantID        *uuid.UUID    `json:"claimant_id,omitempty"`
	Status            HandoffStatus `json:"status"`
	SenderConfirmed   bool          `json:"sender_confirmed"`
	ReceiverConfirmed bool          `json:"receiver_confirmed"`
}

// ConfirmSent sets the sender flag. changed is false when the flag was
// already set. The donation becomes Completed once both flags are true.
func (d *PhysicalDonation) ConfirmSent() (changed bool, err error) {
	if d.SenderConfirmed {
		return false, nil
	}
	if !d.Status.InHandoff() {
		return false, &TransitionError{Entity: "donation", From: string(d.Status), Action: "confirm sent"}
	}
	d.SenderConfirmed = true
	d.settle()
	return true, nil
}

// ConfirmReceived sets the receiver flag, symmetric to ConfirmSent.
func (d *PhysicalDonation) ConfirmReceived() (changed bool, err error) {
	if d.ReceiverConfirmed {
		return false, nil
	}
	if !d.Status.InHandoff() {
		return false, &TransitionError{Entity: "donation", From: string(d.Status), Action: "confirm received"}
	}
	d.ReceiverConfirmed = true
	d.settle()
	return true, nil
}

func (d *PhysicalDonation) settle() {
	if d.SenderConfirmed && d.ReceiverConfirmed {
		d.Status = HandoffCompleted
	}
}

// IsClaimant reports whether userID is the donation's claimant.
func (d *PhysicalDonation) IsClaimant(userID uuid.UUID) bool {
	return d.ClaimantID != nil && *d.ClaimantID == userID
}
