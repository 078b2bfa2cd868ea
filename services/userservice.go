package services

import (
	"context"
	"errors"

	"opsboard/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrUserNotFound = errors.New("user not found")

// GetUserByEmail fetches a user profile. User documents are keyed by email.
func GetUserByEmail(ctx context.Context, fb *firestore.Client, email string) (*model.User, error) {
	snap, err := fb.Collection("users").Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = snap.Ref.ID
	return &user, nil
}

func UserExists(ctx context.Context, fb *firestore.Client, email string) (bool, error) {
	_, err := fb.Collection("users").Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
