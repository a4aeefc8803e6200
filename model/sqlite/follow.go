package sqlite

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/leosakharoff/tweetapi/model"
)

// FollowService is the sqlite follow-edge table service.
type FollowService struct {
	db runner
}

// NewFollowService creates a follow-edge table service on db.
func NewFollowService(db runner) FollowService {
	return FollowService{db: db}
}

// Insert adds a follow edge. A duplicate edge hits the composite primary
// key and is reported as model.ErrAlreadyFollowing.
func (s FollowService) Insert(f *model.Follow) error {
	query, args, err := sq.Insert(model.FollowerTableName).
		Columns("user_id", "follower_id").
		Values(f.UserID, f.FollowerID).ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		if isPrimaryKeyViolation(err) {
			return model.ErrAlreadyFollowing
		}
		return errors.Wrap(err, "insert follow")
	}

	return nil
}

// Delete removes a follow edge. Returns model.ErrNotFollowing if the edge
// did not exist.
func (s FollowService) Delete(userID, followerID int64) error {
	query, args, err := sq.Delete(model.FollowerTableName).
		Where(sq.Eq{"user_id": userID, "follower_id": followerID}).ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "delete follow")
	}

	cnt, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if cnt < 1 {
		return model.ErrNotFollowing
	}

	return nil
}

// Exists reports whether followerID follows userID.
func (s FollowService) Exists(userID, followerID int64) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").From(model.FollowerTableName).
		Where(sq.Eq{"user_id": userID, "follower_id": followerID}).ToSql()
	if err != nil {
		return false, err
	}

	var cnt int
	if err := s.db.QueryRow(query, args...).Scan(&cnt); err != nil {
		return false, errors.Wrap(err, "select follow")
	}

	return cnt > 0, nil
}

// Followers returns the identities of the accounts following userID.
func (s FollowService) Followers(userID int64) ([]model.Identity, error) {
	return s.edgeIdentities("f.follower_id", sq.Eq{"f.user_id": userID})
}

// Following returns the identities of the accounts followerID follows.
func (s FollowService) Following(followerID int64) ([]model.Identity, error) {
	return s.edgeIdentities("f.user_id", sq.Eq{"f.follower_id": followerID})
}

// edgeIdentities reads one direction of the edge table, resolving the
// opposite endpoint to identities, ordered by user id for stable output.
func (s FollowService) edgeIdentities(joinCol string, pred sq.Eq) ([]model.Identity, error) {
	query, args, err := sq.Select("u.id", "u.name").
		From(model.FollowerTableName + " f").
		Join(model.UserTableName + " u ON u.id = " + joinCol).
		Where(pred).OrderBy("u.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "select follow edges")
	}
	defer rows.Close()

	ids := []model.Identity{}
	for rows.Next() {
		var id model.Identity
		if err := rows.Scan(&id.ID, &id.Name); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
