// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package articles

// GraphQL documents sent to the articles and WordPress endpoints. Field
// sets are fixed per operation: list queries carry the summary fields,
// single-record queries the full body.
const (
	queryGetArticles = `query GetArticles($limit: Int, $offset: Int) {
  articles(limit: $limit, offset: $offset) {
    id
    title
    author
  }
}`

	queryGetArticle = `query GetArticle($articleId: Int!) {
  article(articleId: $articleId) {
    id
    title
    content
    author
  }
}`

	mutationCreateArticle = `mutation CreateArticle($title: String!, $content: String!, $author: String) {
  createArticle(title: $title, content: $content, author: $author) {
    success
    message
    article {
      id
      title
      content
      author
      publishedDate
    }
  }
}`

	mutationUpdateArticle = `mutation UpdateArticle($articleId: Int!, $title: String, $content: String, $author: String) {
  updateArticle(article_id: $articleId, title: $title, content: $content, author: $author) {
    success
    message
    article {
      id
      title
      content
      author
      updatedAt
    }
  }
}`

	mutationDeleteArticle = `mutation DeleteArticle($articleId: Int!) {
  deleteArticle(article_id: $articleId) {
    success
    message
  }
}`

	queryGetWordPressPosts = `query GetWordPressPosts($limit: Int) {
  wordpressPosts(limit: $limit) {
    id
    databaseId
    title
    excerpt
    date
    authorName
  }
}`

	queryGetWordPressPost = `query GetWordPressPost($postId: String!) {
  wordpressPost(postId: $postId) {
    id
    databaseId
    title
    content
    excerpt
    date
    authorName
  }
}`
)
