package filestore

import (
	"context"
	"strings"

	"github.com/hackboard/hackboard-api/internal/repository/dao"
)

func (s *Store) ListSubmissions(ctx context.Context, eventID string) ([]dao.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submissions, err := readDoc[dao.Submission](s.path(submissionsFile))
	if err != nil {
		return nil, err
	}

	if eventID == "" {
		return submissions, nil
	}

	filtered := make([]dao.Submission, 0, len(submissions))
	for _, submission := range submissions {
		if submission.EventID == eventID {
			filtered = append(filtered, submission)
		}
	}

	return filtered, nil
}

func (s *Store) FindSubmissionByID(ctx context.Context, id string) (dao.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submissions, err := readDoc[dao.Submission](s.path(submissionsFile))
	if err != nil {
		return dao.Submission{}, err
	}

	for _, submission := range submissions {
		if submission.ID == id {
			return submission, nil
		}
	}

	return dao.Submission{}, dao.ErrSubmissionNotFound
}

func (s *Store) InsertSubmission(ctx context.Context, submission dao.Submission) (dao.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submissions, err := readDoc[dao.Submission](s.path(submissionsFile))
	if err != nil {
		return dao.Submission{}, err
	}

	submissions = append(submissions, submission)
	if err = writeDoc(s.path(submissionsFile), submissions); err != nil {
		return dao.Submission{}, err
	}

	return submission, nil
}

func (s *Store) ListReviews(ctx context.Context) ([]dao.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return readDoc[dao.Review](s.path(reviewsFile))
}

func (s *Store) InsertReview(ctx context.Context, review dao.Review) (dao.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, err := readDoc[dao.Review](s.path(reviewsFile))
	if err != nil {
		return dao.Review{}, err
	}

	reviews = append(reviews, review)
	if err = writeDoc(s.path(reviewsFile), reviews); err != nil {
		return dao.Review{}, err
	}

	return review, nil
}

func (s *Store) ListRegistrations(ctx context.Context, eventID string) ([]dao.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registrations, err := readDoc[dao.Registration](s.path(registrationsFile))
	if err != nil {
		return nil, err
	}

	if eventID == "" {
		return registrations, nil
	}

	filtered := make([]dao.Registration, 0, len(registrations))
	for _, registration := range registrations {
		if registration.EventID == eventID {
			filtered = append(filtered, registration)
		}
	}

	return filtered, nil
}

func (s *Store) InsertRegistration(ctx context.Context, registration dao.Registration) (dao.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registrations, err := readDoc[dao.Registration](s.path(registrationsFile))
	if err != nil {
		return dao.Registration{}, err
	}

	registrations = append(registrations, registration)
	if err = writeDoc(s.path(registrationsFile), registrations); err != nil {
		return dao.Registration{}, err
	}

	return registration, nil
}

func (s *Store) InsertUser(ctx context.Context, user dao.User) (dao.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readDoc[dao.User](s.path(usersFile))
	if err != nil {
		return dao.User{}, err
	}

	for _, existing := range users {
		if strings.EqualFold(existing.Email, user.Email) {
			return dao.User{}, dao.ErrUserEmailExists
		}
	}

	users = append(users, user)
	if err = writeDoc(s.path(usersFile), users); err != nil {
		return dao.User{}, err
	}

	return user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (dao.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := readDoc[dao.User](s.path(usersFile))
	if err != nil {
		return dao.User{}, err
	}

	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}

	return dao.User{}, dao.ErrUserNotFound
}

func (s *Store) ListUsersByRole(ctx context.Context, role string) ([]dao.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := readDoc[dao.User](s.path(usersFile))
	if err != nil {
		return nil, err
	}

	filtered := make([]dao.User, 0, len(users))
	for _, user := range users {
		if user.Role == role {
			filtered = append(filtered, user)
		}
	}

	return filtered, nil
}
