// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelichko/go-cms-client/internal/guard"
	"github.com/avelichko/go-cms-client/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenHome screen = iota
	screenLogin
	screenRegister
	screenArticles
	screenArticleDetail
	screenArticleForm
	screenWordPress
	screenWordPressDetail
	screenProfile
	screenPassword
)

func routeScreen(route string) screen {
	switch route {
	case guard.RouteLogin:
		return screenLogin
	case guard.RouteRegister:
		return screenRegister
	case guard.RouteArticles:
		return screenArticles
	case guard.RouteArticleDetail:
		return screenArticleDetail
	case guard.RouteArticleCreate, guard.RouteArticleEdit:
		return screenArticleForm
	case guard.RouteWordPress:
		return screenWordPress
	case guard.RouteProfile:
		return screenProfile
	case guard.RouteChangePassword:
		return screenPassword
	default:
		return screenHome
	}
}

type appModel struct {
	ctx      context.Context
	services *Services

	currentScreen screen

	home          homeModel
	login         loginModel
	register      registerModel
	articles      articlesListModel
	articleDetail articleDetailModel
	articleForm   articleFormModel
	wpList        wordpressListModel
	wpDetail      wordpressDetailModel
	profile       profileModel
	password      passwordModel

	err          error
	showError    bool
	errorMessage string
	showConfirm  bool
	confirmText  string
	pendingID    int64
}

func newAppModel(ctx context.Context, services *Services) appModel {
	return appModel{
		ctx:      ctx,
		services: services,
		home:     newHomeModel(),
		login:    newLoginModel(),
		register: newRegisterModel(),
		articles: newArticlesListModel(),
		wpList:   newWordPressListModel(),
		profile:  newProfileModel(),
		password: newPasswordModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// navigate moves to the screen behind route after consulting the access
// guard. A denied check lands on the redirect target; when that is the
// login screen the requested route is remembered and resumed after a
// successful sign-in.
func (m appModel) navigate(route string) (appModel, tea.Cmd) {
	decision := m.services.Guard.Check(route)
	if !decision.Allowed {
		if decision.RedirectTo == guard.RouteLogin {
			m.login = newLoginModel()
			m.login.returnTo = decision.ReturnTo
			m.currentScreen = screenLogin
			return m, nil
		}
		m.currentScreen = routeScreen(decision.RedirectTo)
		return m, nil
	}

	m.currentScreen = routeScreen(route)
	switch m.currentScreen {
	case screenArticleForm:
		if route == guard.RouteArticleCreate {
			m.articleForm = newArticleFormModel(nil)
		}
		return m, nil
	case screenArticles:
		m.articles.loading = true
		return m, tea.Batch(m.articles.spinner.Tick, m.cmdLoadArticles())
	case screenWordPress:
		if m.services.WordPress == nil {
			m.currentScreen = screenHome
			m.showErrorf("WordPress endpoint is not configured")
			return m, nil
		}
		m.wpList.loading = true
		return m, tea.Batch(m.wpList.spinner.Tick, m.cmdLoadPosts())
	case screenProfile:
		m.profile = newProfileModel()
		return m, m.cmdLoadProfile()
	case screenPassword:
		m.password = newPasswordModel()
		return m, nil
	case screenLogin:
		m.login = newLoginModel()
		return m, nil
	case screenRegister:
		m.register = newRegisterModel()
		return m, nil
	}
	return m, nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorMessage = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingID == 0 {
					return m, nil
				}
				return m, m.cmdDeleteArticle(m.pendingID)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingID = 0
			}
			return m, nil
		}

	case userChangedMsg:
		m.home.user = msg.user
		return m, nil

	case authResultMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if !msg.outcome.OK {
			message := msg.outcome.Message
			if message == "" {
				message = "Request refused"
			}
			if m.currentScreen == screenRegister {
				m.register.errMsg = message
			} else {
				m.login.errMsg = message
			}
			return m, nil
		}
		m.home.user = msg.outcome.User
		returnTo := m.login.returnTo
		if m.currentScreen == screenLogin && returnTo != "" {
			return m.navigate(returnTo)
		}
		return m.navigate(guard.RouteHome)

	case loggedOutMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
		}
		m.home.user = nil
		return m.navigate(guard.RouteHome)

	case articlesLoadedMsg:
		m.articles.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.articles.items = msg.articles
		if m.articles.idx >= len(m.articles.items) {
			m.articles.idx = len(m.articles.items) - 1
		}
		if m.articles.idx < 0 {
			m.articles.idx = 0
		}
		return m, nil

	case articleLoadedMsg:
		m.articleDetail.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			m.currentScreen = screenArticles
			return m, nil
		}
		m.articleDetail.article = msg.article
		return m, nil

	case mutationDoneMsg:
		m.articleForm.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if !msg.resp.Success {
			message := msg.resp.Message
			if message == "" {
				message = "Request refused"
			}
			if m.currentScreen == screenArticleForm {
				m.articleForm.errMsg = message
				return m, nil
			}
			m.showErrorf(message)
			return m, nil
		}
		m.pendingID = 0
		return m.navigate(guard.RouteArticles)

	case postsLoadedMsg:
		m.wpList.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.wpList.items = msg.posts
		if m.wpList.idx >= len(m.wpList.items) {
			m.wpList.idx = len(m.wpList.items) - 1
		}
		if m.wpList.idx < 0 {
			m.wpList.idx = 0
		}
		return m, nil

	case postLoadedMsg:
		m.wpDetail.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			m.currentScreen = screenWordPress
			return m, nil
		}
		m.wpDetail.post = msg.post
		return m, nil

	case profileLoadedMsg:
		m.profile.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			m.currentScreen = screenHome
			return m, nil
		}
		m.profile.user = msg.user
		return m, nil

	case profileSavedMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.profile.errMsg = msg.err.Error()
			return m, nil
		}
		m.profile.editing = false
		m.profile.user = msg.user
		m.profile.status = "Saved"
		m.home.user = msg.user
		return m, cmdClearStatus()

	case passwordChangedMsg:
		m.password.submitting = false
		if msg.err != nil {
			m.password.errMsg = msg.err.Error()
			return m, nil
		}
		if !msg.outcome.OK {
			message := msg.outcome.Message
			if message == "" {
				message = "Request refused"
			}
			m.password.errMsg = message
			return m, nil
		}
		m.password = newPasswordModel()
		m.password.status = "Password changed"
		return m, cmdClearStatus()

	case copiedMsg:
		m.articleDetail.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.articleDetail.status = ""
		m.articles.status = ""
		m.profile.status = ""
		m.password.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.articles.loading {
			var cmd tea.Cmd
			m.articles.spinner, cmd = m.articles.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.wpList.loading {
			var cmd tea.Cmd
			m.wpList.spinner, cmd = m.wpList.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenHome:
		return m.updateHome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenArticles:
		return m.updateArticles(msg)
	case screenArticleDetail:
		return m.updateArticleDetail(msg)
	case screenArticleForm:
		return m.updateArticleForm(msg)
	case screenWordPress:
		return m.updateWordPress(msg)
	case screenWordPressDetail:
		return m.updateWordPressDetail(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenPassword:
		return m.updatePassword(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenHome:
		body = m.home.View(m.services.Session.IsAuthenticated())
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenArticles:
		body = m.articles.View(m.services.Session.IsAuthenticated())
	case screenArticleDetail:
		body = m.articleDetail.View(m.services.Session.IsAdmin())
	case screenArticleForm:
		body = m.articleForm.View()
	case screenWordPress:
		body = m.wpList.View()
	case screenWordPressDetail:
		body = m.wpDetail.View()
	case screenProfile:
		body = m.profile.View()
	case screenPassword:
		body = m.password.View()
	}

	if m.showConfirm {
		body += "\n\n" + overlayBoxStyle.Render("Delete \""+m.confirmText+"\"?  y/n")
	}
	if m.showError {
		body += "\n\n" + overlayBoxStyle.Render("Error: "+m.errorMessage+"\n\npress enter to dismiss")
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorMessage = message
}

// ── Screen updates ───────────────────────────────────────────────────────────

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.home.items(m.services.Session.IsAuthenticated())
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(items)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.home.idx < len(items) {
			return m.navigate(items[m.home.idx].route)
		}
	case key.Matches(keyMsg, keys.logout):
		if m.services.Session.IsAuthenticated() {
			return m, m.cmdLogout()
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			identifier := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if identifier == "" || password == "" {
				m.login.errMsg = "Identifier and password are required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(identifier, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = m.register.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = m.register.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			password := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if username == "" || email == "" || password == "" {
				m.register.errMsg = "Username, email and password are required"
				return m, nil
			}
			if password != repeat {
				m.register.errMsg = "Passwords do not match"
				return m, nil
			}
			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Username:  username,
				Email:     email,
				Password:  password,
				FirstName: strings.TrimSpace(m.register.inputs[4].Value()),
				LastName:  strings.TrimSpace(m.register.inputs[5].Value()),
			})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateArticles(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.articles.idx > 0 {
			m.articles.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.articles.idx < len(m.articles.items)-1 {
			m.articles.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		article, ok := m.articles.current()
		if !ok {
			return m, nil
		}
		m.articleDetail = articleDetailModel{loading: true}
		m.currentScreen = screenArticleDetail
		return m, m.cmdLoadArticle(article.ID)
	case key.Matches(keyMsg, keys.newItem):
		decision := m.services.Guard.Check(guard.RouteArticleCreate)
		if !decision.Allowed {
			return m.navigate(guard.RouteArticleCreate)
		}
		m.articleForm = newArticleFormModel(nil)
		m.currentScreen = screenArticleForm
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m.articles.loading = true
		return m, tea.Batch(m.articles.spinner.Tick, m.cmdLoadArticles())
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateArticleDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenArticles
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		if m.articleDetail.article == nil {
			return m, nil
		}
		decision := m.services.Guard.Check(guard.RouteArticleEdit)
		if !decision.Allowed {
			return m.navigate(guard.RouteArticleEdit)
		}
		m.articleForm = newArticleFormModel(m.articleDetail.article)
		m.currentScreen = screenArticleForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		if m.articleDetail.article == nil {
			return m, nil
		}
		decision := m.services.Guard.Check(guard.RouteArticleEdit)
		if !decision.Allowed {
			return m.navigate(guard.RouteArticleEdit)
		}
		m.showConfirm = true
		m.confirmText = m.articleDetail.article.Title
		m.pendingID = m.articleDetail.article.ID
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.articleDetail.article == nil || m.articleDetail.article.Content == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.articleDetail.article.Content)
	}
	return m, nil
}

func (m appModel) updateArticleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.articleForm.editing() {
				m.currentScreen = screenArticleDetail
			} else {
				m.currentScreen = screenArticles
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.articleForm = m.articleForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.articleForm = m.articleForm.focusPrev()
			return m, nil
		case keyMsg.String() == "ctrl+s":
			if m.articleForm.submitting {
				return m, nil
			}
			draft := m.articleForm.draft()
			if !m.articleForm.editing() && (draft.Title == "" || draft.Content == "") {
				m.articleForm.errMsg = "Title and content are required"
				return m, nil
			}
			m.articleForm.errMsg = ""
			m.articleForm.submitting = true
			if m.articleForm.editing() {
				return m, m.cmdUpdateArticle(m.articleForm.articleID, draft)
			}
			return m, m.cmdCreateArticle(draft)
		}
	}

	var cmd tea.Cmd
	switch m.articleForm.focus {
	case 0:
		m.articleForm.title, cmd = m.articleForm.title.Update(msg)
	case 1:
		m.articleForm.author, cmd = m.articleForm.author.Update(msg)
	case 2:
		m.articleForm.content, cmd = m.articleForm.content.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateWordPress(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.wpList.idx > 0 {
			m.wpList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.wpList.idx < len(m.wpList.items)-1 {
			m.wpList.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		post, ok := m.wpList.current()
		if !ok {
			return m, nil
		}
		m.wpDetail = wordpressDetailModel{loading: true}
		m.currentScreen = screenWordPressDetail
		return m, m.cmdLoadPost(post.ID)
	case key.Matches(keyMsg, keys.refresh):
		m.wpList.loading = true
		return m, tea.Batch(m.wpList.spinner.Tick, m.cmdLoadPosts())
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateWordPressDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenWordPress
	}
	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !m.profile.editing {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
		case key.Matches(keyMsg, keys.edit):
			m.profile = m.profile.startEditing()
		case keyMsg.String() == "p":
			return m.navigate(guard.RouteChangePassword)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.profile.editing = false
		m.profile.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.profile = m.profile.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.profile = m.profile.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.profile.submitting {
			return m, nil
		}
		update := m.profile.update()
		if update.Email == nil && update.FirstName == nil && update.LastName == nil {
			m.profile.editing = false
			return m, nil
		}
		m.profile.errMsg = ""
		m.profile.submitting = true
		return m, m.cmdSaveProfile(update)
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (m appModel) updatePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.navigate(guard.RouteProfile)
		case key.Matches(keyMsg, keys.tab):
			m.password = m.password.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.password = m.password.focusPrev()
			return m, nil
		case keyMsg.String() == " ":
			m.password.logoutAll = !m.password.logoutAll
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.password.submitting {
				return m, nil
			}
			current := m.password.inputs[0].Value()
			newPass := m.password.inputs[1].Value()
			repeat := m.password.inputs[2].Value()
			if current == "" || newPass == "" {
				m.password.errMsg = "Current and new passwords are required"
				return m, nil
			}
			if newPass != repeat {
				m.password.errMsg = "Passwords do not match"
				return m, nil
			}
			m.password.errMsg = ""
			m.password.submitting = true
			return m, m.cmdChangePassword(models.ChangePasswordRequest{
				CurrentPassword:  current,
				NewPassword:      newPass,
				LogoutAllDevices: m.password.logoutAll,
			})
		}
	}

	var cmd tea.Cmd
	m.password.inputs[m.password.focus], cmd = m.password.inputs[m.password.focus].Update(msg)
	return m, cmd
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLogin(identifier, password string) tea.Cmd {
	ctx := m.ctx
	sess := m.services.Session
	return func() tea.Msg {
		outcome, err := sess.Login(ctx, identifier, password)
		return authResultMsg{outcome: outcome, err: err}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	sess := m.services.Session
	return func() tea.Msg {
		outcome, err := sess.Register(ctx, req)
		return authResultMsg{outcome: outcome, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sess := m.services.Session
	return func() tea.Msg {
		return loggedOutMsg{err: sess.Logout(ctx)}
	}
}

func (m appModel) cmdLoadArticles() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Articles
	offset := m.articles.offset
	return func() tea.Msg {
		articles, err := svc.List(ctx, articlesPageSize, offset)
		return articlesLoadedMsg{articles: articles, err: err}
	}
}

func (m appModel) cmdLoadArticle(articleID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Articles
	return func() tea.Msg {
		article, err := svc.Get(ctx, articleID)
		return articleLoadedMsg{article: article, err: err}
	}
}

func (m appModel) cmdCreateArticle(draft models.ArticleDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Articles
	return func() tea.Msg {
		resp, err := svc.Create(ctx, draft)
		return mutationDoneMsg{resp: resp, err: err}
	}
}

func (m appModel) cmdUpdateArticle(articleID int64, draft models.ArticleDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Articles
	return func() tea.Msg {
		resp, err := svc.Update(ctx, articleID, draft)
		return mutationDoneMsg{resp: resp, err: err}
	}
}

func (m appModel) cmdDeleteArticle(articleID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Articles
	return func() tea.Msg {
		resp, err := svc.Delete(ctx, articleID)
		return mutationDoneMsg{resp: resp, err: err}
	}
}

func (m appModel) cmdLoadPosts() tea.Cmd {
	ctx := m.ctx
	svc := m.services.WordPress
	return func() tea.Msg {
		posts, err := svc.ListPosts(ctx, wordpressPageSize)
		return postsLoadedMsg{posts: posts, err: err}
	}
}

func (m appModel) cmdLoadPost(postID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.WordPress
	return func() tea.Msg {
		post, err := svc.GetPost(ctx, postID)
		return postLoadedMsg{post: post, err: err}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	sess := m.services.Session
	return func() tea.Msg {
		user, err := sess.GetProfile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m appModel) cmdSaveProfile(update models.ProfileUpdate) tea.Cmd {
	ctx := m.ctx
	sess := m.services.Session
	return func() tea.Msg {
		user, err := sess.UpdateProfile(ctx, update)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m appModel) cmdChangePassword(req models.ChangePasswordRequest) tea.Cmd {
	ctx := m.ctx
	sess := m.services.Session
	return func() tea.Msg {
		outcome, err := sess.ChangePassword(ctx, req)
		return passwordChangedMsg{outcome: outcome, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return mutationDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
