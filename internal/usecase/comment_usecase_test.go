package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

type commentFixture struct {
	uc          usecasecontract.ICommentUseCase
	commentRepo *fakeCommentRepo
	blogRepo    *fakeBlogRepo
	userRepo    *fakeUserRepo
	ctx         context.Context
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	f := &commentFixture{
		commentRepo: newFakeCommentRepo(),
		blogRepo:    newFakeBlogRepo(),
		userRepo:    newFakeUserRepo(),
		ctx:         context.Background(),
	}
	f.uc = NewCommentUseCase(f.commentRepo, f.blogRepo, f.userRepo, &seqUUIDGen{})
	f.userRepo.seed(entity.User{ID: "author-1", Username: "author1", Email: "a1@x.com"})
	f.userRepo.seed(entity.User{ID: "author-2", Username: "author2", Email: "a2@x.com"})
	require.NoError(t, f.blogRepo.CreateBlog(f.ctx, &entity.Blog{ID: "post-1", Title: "Post", Slug: "post", Status: entity.BlogStatusPublished}))
	require.NoError(t, f.blogRepo.CreateBlog(f.ctx, &entity.Blog{ID: "post-2", Title: "Other", Slug: "other", Status: entity.BlogStatusPublished}))
	return f
}

func TestCreateCommentAndReply(t *testing.T) {
	f := newCommentFixture(t)

	top, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "first!", nil)
	require.NoError(t, err)
	assert.Nil(t, top.ParentID)
	assert.False(t, top.IsEdited)

	reply, err := f.uc.CreateComment(f.ctx, "post-1", "author-2", "welcome", &top.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, top.ID, *reply.ParentID)
}

func TestCreateCommentValidation(t *testing.T) {
	f := newCommentFixture(t)

	_, err := f.uc.CreateComment(f.ctx, "no-such-post", "author-1", "hi", nil)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = f.uc.CreateComment(f.ctx, "post-1", "no-such-user", "hi", nil)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = f.uc.CreateComment(f.ctx, "post-1", "author-1", "   ", nil)
	assert.True(t, apperr.IsKind(err, apperr.InvalidOperation))

	long := strings.Repeat("x", 1001)
	_, err = f.uc.CreateComment(f.ctx, "post-1", "author-1", long, nil)
	assert.True(t, apperr.IsKind(err, apperr.InvalidOperation))
}

func TestCommentLengthCountsCharactersNotBytes(t *testing.T) {
	f := newCommentFixture(t)

	// 600 two-byte runes exceed 1000 bytes but stay within the limit.
	multibyte := strings.Repeat("é", 600)
	comment, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", multibyte, nil)
	require.NoError(t, err)
	assert.Equal(t, multibyte, comment.Content)

	_, err = f.uc.CreateComment(f.ctx, "post-1", "author-1", strings.Repeat("é", 1001), nil)
	assert.True(t, apperr.IsKind(err, apperr.InvalidOperation))
}

func TestReplyParentMustBeOnSamePost(t *testing.T) {
	f := newCommentFixture(t)

	top, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "first", nil)
	require.NoError(t, err)

	_, err = f.uc.CreateComment(f.ctx, "post-2", "author-2", "cross-post reply", &top.ID)
	assert.True(t, apperr.IsKind(err, apperr.InvalidOperation))
}

func TestReplyToDeletedParentRejected(t *testing.T) {
	f := newCommentFixture(t)

	top, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "first", nil)
	require.NoError(t, err)
	require.NoError(t, f.uc.DeleteComment(f.ctx, top.ID, "author-1", false, true))

	_, err = f.uc.CreateComment(f.ctx, "post-1", "author-2", "reply", &top.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	missing := "no-such-comment"
	_, err = f.uc.CreateComment(f.ctx, "post-1", "author-2", "reply", &missing)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestUpdateCommentMarksEdited(t *testing.T) {
	f := newCommentFixture(t)

	c, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "tpyo", nil)
	require.NoError(t, err)

	_, err = f.uc.UpdateComment(f.ctx, c.ID, "author-2", false, "fixed")
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))

	updated, err := f.uc.UpdateComment(f.ctx, c.ID, "author-1", false, "typo")
	require.NoError(t, err)
	assert.True(t, updated.IsEdited)
	assert.Equal(t, "typo", updated.Content)
	assert.NotNil(t, updated.UpdatedAt)

	// elevated callers may edit others' comments
	_, err = f.uc.UpdateComment(f.ctx, c.ID, "author-2", true, "moderated")
	assert.NoError(t, err)
}

func TestSoftDeletedCommentStaysAddressable(t *testing.T) {
	f := newCommentFixture(t)

	c, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "bye", nil)
	require.NoError(t, err)
	require.NoError(t, f.uc.DeleteComment(f.ctx, c.ID, "author-1", false, true))

	got, err := f.uc.GetComment(f.ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	// but it cannot be edited, liked, or deleted again
	_, err = f.uc.UpdateComment(f.ctx, c.ID, "author-1", false, "resurrect")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.True(t, apperr.IsKind(f.uc.LikeComment(f.ctx, c.ID, "author-2"), apperr.NotFound))
	assert.True(t, apperr.IsKind(f.uc.DeleteComment(f.ctx, c.ID, "author-1", false, true), apperr.NotFound))
}

func TestDeleteCommentOwnership(t *testing.T) {
	f := newCommentFixture(t)

	c, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "mine", nil)
	require.NoError(t, err)

	err = f.uc.DeleteComment(f.ctx, c.ID, "author-2", false, true)
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))

	// a moderator may remove it
	assert.NoError(t, f.uc.DeleteComment(f.ctx, c.ID, "author-2", true, true))
}

func TestListByPostAssemblesThreads(t *testing.T) {
	f := newCommentFixture(t)

	top1, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "top one", nil)
	require.NoError(t, err)
	top2, err := f.uc.CreateComment(f.ctx, "post-1", "author-2", "top two", nil)
	require.NoError(t, err)
	reply1, err := f.uc.CreateComment(f.ctx, "post-1", "author-2", "reply to one", &top1.ID)
	require.NoError(t, err)
	_, err = f.uc.CreateComment(f.ctx, "post-2", "author-1", "other post", nil)
	require.NoError(t, err)

	threads, err := f.uc.ListByPost(f.ctx, "post-1", true)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, top1.ID, threads[0].Comment.ID)
	assert.Equal(t, top2.ID, threads[1].Comment.ID)
	require.Len(t, threads[0].Replies, 1)
	assert.Equal(t, reply1.ID, threads[0].Replies[0].ID)
	assert.Empty(t, threads[1].Replies)

	// without replies the top-level comments still come back
	threads, err = f.uc.ListByPost(f.ctx, "post-1", false)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Empty(t, threads[0].Replies)
}

func TestListByPostPromotesOrphanedReplies(t *testing.T) {
	f := newCommentFixture(t)

	top, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "parent", nil)
	require.NoError(t, err)
	reply, err := f.uc.CreateComment(f.ctx, "post-1", "author-2", "child", &top.ID)
	require.NoError(t, err)

	// soft-deleting the parent hides it but keeps the reply visible
	require.NoError(t, f.uc.DeleteComment(f.ctx, top.ID, "author-1", false, true))

	threads, err := f.uc.ListByPost(f.ctx, "post-1", true)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, reply.ID, threads[0].Comment.ID)
	assert.Empty(t, threads[0].Replies)
}

func TestListByPostNestedReplyListsFlat(t *testing.T) {
	f := newCommentFixture(t)

	top, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "top", nil)
	require.NoError(t, err)
	reply, err := f.uc.CreateComment(f.ctx, "post-1", "author-2", "reply", &top.ID)
	require.NoError(t, err)
	nested, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "nested", &reply.ID)
	require.NoError(t, err)

	threads, err := f.uc.ListByPost(f.ctx, "post-1", true)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	require.Len(t, threads[0].Replies, 2)
	assert.Equal(t, reply.ID, threads[0].Replies[0].ID)
	assert.Equal(t, nested.ID, threads[0].Replies[1].ID)
}

func TestCountByPostSkipsDeleted(t *testing.T) {
	f := newCommentFixture(t)

	c1, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "one", nil)
	require.NoError(t, err)
	_, err = f.uc.CreateComment(f.ctx, "post-1", "author-2", "two", nil)
	require.NoError(t, err)

	count, err := f.uc.CountByPost(f.ctx, "post-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, f.uc.DeleteComment(f.ctx, c1.ID, "author-1", false, true))
	count, err = f.uc.CountByPost(f.ctx, "post-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCommentLikesAreSetSemantics(t *testing.T) {
	f := newCommentFixture(t)

	c, err := f.uc.CreateComment(f.ctx, "post-1", "author-1", "like me", nil)
	require.NoError(t, err)

	require.NoError(t, f.uc.LikeComment(f.ctx, c.ID, "author-2"))
	require.NoError(t, f.uc.LikeComment(f.ctx, c.ID, "author-2"))

	count, err := f.uc.CountLikes(f.ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, f.uc.UnlikeComment(f.ctx, c.ID, "author-2"))
	require.NoError(t, f.uc.UnlikeComment(f.ctx, c.ID, "author-2"))
	count, err = f.uc.CountLikes(f.ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
