package articles

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avelichko/go-cms-client/internal/adapter"
	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/internal/mock"
	"github.com/avelichko/go-cms-client/internal/validators"
	"github.com/avelichko/go-cms-client/models"
)

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *mock.MockGraphQLExecutor) {
	t.Helper()
	gql := mock.NewMockGraphQLExecutor(ctrl)
	return NewService(gql, validators.NewInputValidator(), logger.Nop()), gql
}

// respondJSON returns a DoAndReturn func that decodes data into the
// executor's out argument, the way the real executor does.
func respondJSON(data string) func(context.Context, string, map[string]any, any) error {
	return func(_ context.Context, _ string, _ map[string]any, out any) error {
		return json.Unmarshal([]byte(data), out)
	}
}

// ── Queries ──────────────────────────────────────────────────────────────────

func TestList_ReturnsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	gql.EXPECT().Execute(ctx, queryGetArticles, map[string]any{"limit": 10, "offset": 0}, gomock.Any()).
		DoAndReturn(respondJSON(`{"articles":[
			{"id":1,"title":"First","author":"ann"},
			{"id":2,"title":"Second","author":"bob"}
		]}`))

	page, err := svc.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "First", page[0].Title)
	assert.Equal(t, int64(2), page[1].ID)
}

func TestList_DropsNullEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	gql.EXPECT().Execute(ctx, queryGetArticles, gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"articles":[
			{"id":1,"title":"First","author":"ann"},
			null,
			{"id":2,"title":"Second","author":"bob"}
		]}`))

	page, err := svc.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(1), page[0].ID)
	assert.Equal(t, int64(2), page[1].ID)
}

func TestGet_ReturnsArticleWithContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	gql.EXPECT().Execute(ctx, queryGetArticle, map[string]any{"articleId": int64(7)}, gomock.Any()).
		DoAndReturn(respondJSON(`{"article":{"id":7,"title":"Deep dive","content":"body","author":"ann"}}`))

	article, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "body", article.Content)
}

func TestGet_NullArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	gql.EXPECT().Execute(ctx, queryGetArticle, gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"article":null}`))

	_, err := svc.Get(ctx, 404)
	assert.ErrorIs(t, err, adapter.ErrEmptyData)
}

func TestList_ExecutorErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	gql.EXPECT().Execute(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(adapter.ErrGraphQLErrors)

	_, err := svc.List(ctx, 10, 0)
	assert.ErrorIs(t, err, adapter.ErrGraphQLErrors)
}

// ── Mutations and refetch ────────────────────────────────────────────────────

func TestCreate_RefetchesListWatchers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	// initial fetch on WatchList
	gql.EXPECT().Execute(ctx, queryGetArticles, gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"articles":[{"id":1,"title":"Only one"}]}`))

	var pages [][]models.Article
	_, err := svc.WatchList(ctx, 10, 0, func(page []models.Article) {
		pages = append(pages, page)
	})
	require.NoError(t, err)
	require.Len(t, pages, 1)

	gomock.InOrder(
		gql.EXPECT().Execute(ctx, mutationCreateArticle, gomock.Any(), gomock.Any()).
			DoAndReturn(respondJSON(`{"createArticle":{"success":true,"message":"created",
				"article":{"id":2,"title":"Fresh"}}}`)),
		gql.EXPECT().Execute(ctx, queryGetArticles, map[string]any{"limit": 10, "offset": 0}, gomock.Any()).
			DoAndReturn(respondJSON(`{"articles":[{"id":1,"title":"Only one"},{"id":2,"title":"Fresh"}]}`)),
	)

	resp, err := svc.Create(ctx, models.ArticleDraft{Title: "Fresh", Content: "body"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Article)
	assert.Equal(t, int64(2), resp.Article.ID)

	require.Len(t, pages, 2, "list watcher must be refetched after create")
	assert.Len(t, pages[1], 2)
}

func TestUpdate_RefetchesListAndMatchingDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	gql.EXPECT().Execute(ctx, queryGetArticles, gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"articles":[{"id":5,"title":"Old title"}]}`))
	var lists int
	_, err := svc.WatchList(ctx, 10, 0, func([]models.Article) { lists++ })
	require.NoError(t, err)

	gql.EXPECT().Execute(ctx, queryGetArticle, map[string]any{"articleId": int64(5)}, gomock.Any()).
		DoAndReturn(respondJSON(`{"article":{"id":5,"title":"Old title","content":"old"}}`))
	var details []*models.Article
	_, err = svc.WatchArticle(ctx, 5, func(a *models.Article) { details = append(details, a) })
	require.NoError(t, err)

	// detail watch on a different article must not be refetched
	gql.EXPECT().Execute(ctx, queryGetArticle, map[string]any{"articleId": int64(9)}, gomock.Any()).
		DoAndReturn(respondJSON(`{"article":{"id":9,"title":"Unrelated"}}`))
	var unrelated int
	_, err = svc.WatchArticle(ctx, 9, func(*models.Article) { unrelated++ })
	require.NoError(t, err)

	gql.EXPECT().Execute(ctx, mutationUpdateArticle,
		map[string]any{"articleId": int64(5), "title": "New title"}, gomock.Any()).
		DoAndReturn(respondJSON(`{"updateArticle":{"success":true,"message":"updated"}}`))
	gql.EXPECT().Execute(ctx, queryGetArticles, gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"articles":[{"id":5,"title":"New title"}]}`))
	gql.EXPECT().Execute(ctx, queryGetArticle, map[string]any{"articleId": int64(5)}, gomock.Any()).
		DoAndReturn(respondJSON(`{"article":{"id":5,"title":"New title","content":"old"}}`))

	resp, err := svc.Update(ctx, 5, models.ArticleDraft{Title: "New title"})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	assert.Equal(t, 2, lists)
	require.Len(t, details, 2)
	assert.Equal(t, "New title", details[1].Title)
	assert.Equal(t, 1, unrelated)
}

func TestUpdate_EmptyDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestService(t, ctrl)

	_, err := svc.Update(context.Background(), 5, models.ArticleDraft{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestDelete_RefetchesListWatchers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	gql.EXPECT().Execute(ctx, queryGetArticles, gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"articles":[{"id":1},{"id":2}]}`))
	var pages [][]models.Article
	_, err := svc.WatchList(ctx, 10, 0, func(page []models.Article) { pages = append(pages, page) })
	require.NoError(t, err)

	gomock.InOrder(
		gql.EXPECT().Execute(ctx, mutationDeleteArticle, map[string]any{"articleId": int64(1)}, gomock.Any()).
			DoAndReturn(respondJSON(`{"deleteArticle":{"success":true,"message":"deleted"}}`)),
		gql.EXPECT().Execute(ctx, queryGetArticles, gomock.Any(), gomock.Any()).
			DoAndReturn(respondJSON(`{"articles":[{"id":2}]}`)),
	)

	resp, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, pages, 2)
	assert.Len(t, pages[1], 1)
}

func TestRefetch_FailureDoesNotFailMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	gql.EXPECT().Execute(ctx, queryGetArticles, gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"articles":[]}`))
	calls := 0
	_, err := svc.WatchList(ctx, 10, 0, func([]models.Article) { calls++ })
	require.NoError(t, err)

	gomock.InOrder(
		gql.EXPECT().Execute(ctx, mutationDeleteArticle, gomock.Any(), gomock.Any()).
			DoAndReturn(respondJSON(`{"deleteArticle":{"success":true,"message":"deleted"}}`)),
		gql.EXPECT().Execute(ctx, queryGetArticles, gomock.Any(), gomock.Any()).
			Return(errors.New("endpoint down")),
	)

	resp, err := svc.Delete(ctx, 1)
	require.NoError(t, err, "refetch failure must not surface from the mutation")
	assert.True(t, resp.Success)
	assert.Equal(t, 1, calls, "watcher not notified when its refetch failed")
}

func TestUnwatch_StopsRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gql := newTestService(t, ctrl)
	ctx := context.Background()

	gql.EXPECT().Execute(ctx, queryGetArticles, gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"articles":[]}`))
	calls := 0
	id, err := svc.WatchList(ctx, 10, 0, func([]models.Article) { calls++ })
	require.NoError(t, err)

	svc.Unwatch(id)

	gql.EXPECT().Execute(ctx, mutationDeleteArticle, gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"deleteArticle":{"success":true}}`))

	_, err = svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCreate_ValidationBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestService(t, ctrl)

	_, err := svc.Create(context.Background(), models.ArticleDraft{Content: "body"})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}
