package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-movie-browser/internal/service"
	"github.com/MKhiriev/go-movie-browser/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const listHotKeys = "m: movies │ t: tv │ /: search │ enter: open │ ←/→: page │ ↑/↓: move │ l: logout"

type browseModel struct {
	ctx      context.Context
	services *service.Services
	username string
	debug    bool

	mediaType models.MediaType
	query     string
	page      models.MediaPage
	idx       int
	loading   bool
	status    string
	errMsg    string

	searching   bool
	searchInput textinput.Model

	detail        bool
	detailLoading bool
	details       models.MediaDetails
	trailer       models.Video
	hasTrailer    bool

	spin spinner.Model

	logout bool
}

func newBrowseModel(ctx context.Context, services *service.Services, username string) browseModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "title to search for"
	searchInput.CharLimit = 120
	searchInput.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	return browseModel{
		ctx:         ctx,
		services:    services,
		username:    username,
		debug:       isTUIDebugEnabled(),
		mediaType:   models.Movie,
		loading:     true,
		searchInput: searchInput,
		spin:        spin,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoadPage(1))
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeCatalogError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.page = msg.page
		m.idx = 0
		m.status = m.listStatus()
		return m, nil
	case detailLoadedMsg:
		m.detailLoading = false
		if msg.err != nil {
			m.errMsg = humanizeCatalogError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		m.details = msg.details
		m.trailer = msg.trailer
		m.hasTrailer = msg.hasTrailer
		m.detail = true
		return m, nil
	case posterSavedMsg:
		if msg.err != nil {
			m.errMsg = "Poster not saved: " + humanizeCatalogError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Poster saved to " + msg.file
		return m, nil
	case spinner.TickMsg:
		if !m.loading && !m.detailLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.searching {
		return m.updateSearching(keyMsg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		if m.idx > 0 {
			m.idx--
		}
	case "down":
		if m.idx < len(m.page.Results)-1 {
			m.idx++
		}
	case "m":
		return m.switchMediaType(models.Movie)
	case "t":
		return m.switchMediaType(models.TVShow)
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.query)
		m.searchInput.Focus()
		return m, textinput.Blink
	case "esc":
		if m.query == "" {
			return m, nil
		}
		m.query = ""
		m.idx = 0
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spin.Tick, m.cmdLoadPage(1))
	case "right":
		if m.loading || m.page.Page >= m.page.TotalPages {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadPage(m.page.Page+1))
	case "left":
		if m.loading || m.page.Page <= 1 {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadPage(m.page.Page-1))
	case "enter":
		item, ok := m.current()
		if !ok {
			m.status = "Nothing to open"
			return m, nil
		}
		m.detailLoading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadDetail(item.ID))
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m browseModel) updateSearching(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			m.errMsg = "Type a title to search for"
			return m, nil
		}

		m.searching = false
		m.searchInput.Blur()
		m.errMsg = ""
		m.query = query
		m.idx = 0
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadPage(1))
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(keyMsg)
	return m, cmd
}

func (m browseModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.detail = false
		m.errMsg = ""
		m.status = m.listStatus()
	case "c":
		if !m.hasTrailer || m.trailer.WatchURL() == "" {
			m.status = "No trailer to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(m.trailer.WatchURL()); err != nil {
			m.errMsg = fmt.Sprintf("Copying failed: %v", err)
			return m, nil
		}
		m.status = "Trailer link copied"
	case "p":
		if m.details.PosterPath == "" {
			m.status = "No poster for this title"
			return m, nil
		}
		m.status = "Saving poster..."
		return m, m.cmdSavePoster(m.details.PosterPath)
	}
	return m, nil
}

func (m browseModel) switchMediaType(mediaType models.MediaType) (tea.Model, tea.Cmd) {
	if m.mediaType == mediaType {
		return m, nil
	}

	m.mediaType = mediaType
	m.query = ""
	m.idx = 0
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m, tea.Batch(m.spin.Tick, m.cmdLoadPage(1))
}

func (m browseModel) View() string {
	if m.searching {
		return m.viewSearch()
	}

	if m.detail || m.detailLoading {
		return m.viewDetail()
	}

	return m.viewList()
}

func (m browseModel) viewSearch() string {
	out := "Search " + mediaTypeLabel(m.mediaType) + "\n\n"
	out += "Query     : [ " + m.searchInput.View() + " ]\n"
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("SEARCH", strings.TrimRight(out, "\n"), "enter: search │ esc: cancel")
}

func (m browseModel) viewList() string {
	title := "POPULAR MOVIES"
	if m.mediaType == models.TVShow {
		title = "POPULAR TV SHOWS"
	}
	if m.query != "" {
		title = "SEARCH RESULTS"
	}

	hotKeys := listHotKeys
	if m.query != "" {
		hotKeys = "esc: back to popular │ " + listHotKeys
	}

	if m.loading {
		return renderPage(title, m.spin.View()+" Loading...", hotKeys)
	}

	out := ""
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += statusStyle.Render(m.status) + "\n"
	}
	if m.debug {
		out += fmt.Sprintf("DEBUG: user=%s session=%s\n", getSessionUser(), getSessionID())
	}

	if len(m.page.Results) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No titles to show\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "#    │ Rate │ Year │ Title\n"
		out += "─────┼──────┼──────┼──────────────────────────────────────\n"
		for i, item := range m.page.Results {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-4s │ %-4s │ %s\n",
				cursor,
				i+1,
				item.RatingLabel(),
				item.Year(),
				fitText(item.DisplayTitle(), 38),
			)
		}
	}

	return renderPage(title, strings.TrimRight(out, "\n"), hotKeys)
}

func (m browseModel) viewDetail() string {
	if m.detailLoading {
		return renderPage("DETAILS", m.spin.View()+" Loading...", "esc: back")
	}

	d := m.details

	var b strings.Builder
	b.WriteString("[ TITLE ]\n")
	b.WriteString("Title     : " + d.DisplayTitle() + "\n")
	if d.Tagline != "" {
		b.WriteString("Tagline   : " + d.Tagline + "\n")
	}
	b.WriteString("Year      : " + d.Year() + "\n")
	b.WriteString("Rating    : ⭐ " + d.RatingLabel() + "\n")
	if line := d.GenresLine(); line != "" {
		b.WriteString("Genres    : " + line + "\n")
	}
	if length := d.LengthLabel(); length != "" {
		b.WriteString("Length    : " + length + "\n")
	}
	if d.Status != "" {
		b.WriteString("Status    : " + d.Status + "\n")
	}
	if d.Homepage != "" {
		b.WriteString("Homepage  : " + d.Homepage + "\n")
	}

	b.WriteString("\n[ OVERVIEW ]\n")
	if strings.TrimSpace(d.Overview) != "" {
		b.WriteString(d.Overview + "\n")
	} else {
		b.WriteString("(no overview)\n")
	}

	b.WriteString("\n[ TRAILER ]\n")
	if m.hasTrailer && m.trailer.WatchURL() != "" {
		b.WriteString(m.trailer.Name + " (" + m.trailer.Site + ")\n")
		b.WriteString(m.trailer.WatchURL() + "\n")
	} else {
		b.WriteString("(no trailer)\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	title := strings.ToUpper(string(m.mediaType)) + ": " + fitText(d.DisplayTitle(), 40)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "c: copy trailer link │ p: save poster │ esc: back")
}

func (m browseModel) current() (models.MediaItem, bool) {
	if len(m.page.Results) == 0 || m.idx < 0 || m.idx >= len(m.page.Results) {
		return models.MediaItem{}, false
	}
	return m.page.Results[m.idx], true
}

func (m browseModel) listStatus() string {
	if len(m.page.Results) == 0 {
		return "No titles found"
	}
	if m.query == "" {
		return fmt.Sprintf("Popular %s, page %d/%d", mediaTypeLabel(m.mediaType), m.page.Page, m.page.TotalPages)
	}
	return fmt.Sprintf("%q in %s: %d titles, page %d/%d", m.query, mediaTypeLabel(m.mediaType), m.page.TotalResults, m.page.Page, m.page.TotalPages)
}

func (m browseModel) cmdLoadPage(page int) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog
	prefetch := m.services.Prefetcher
	mediaType := m.mediaType
	query := m.query

	return func() tea.Msg {
		var (
			result models.MediaPage
			err    error
		)
		if query == "" {
			result, err = catalog.Popular(ctx, mediaType, page)
		} else {
			result, err = catalog.Search(ctx, mediaType, query, page)
		}
		if err != nil {
			return pageLoadedMsg{err: err}
		}

		prefetch.Enqueue(result.Results)
		return pageLoadedMsg{page: result}
	}
}

func (m browseModel) cmdLoadDetail(id int64) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog
	mediaType := m.mediaType

	return func() tea.Msg {
		details, err := catalog.Details(ctx, mediaType, id)
		if err != nil {
			return detailLoadedMsg{err: err}
		}

		// A missing or failed trailer lookup must not block the details page.
		trailer, hasTrailer, err := catalog.Trailer(ctx, mediaType, id)
		if err != nil {
			hasTrailer = false
		}

		return detailLoadedMsg{details: details, trailer: trailer, hasTrailer: hasTrailer}
	}
}

func (m browseModel) cmdSavePoster(posterPath string) tea.Cmd {
	ctx := m.ctx
	posters := m.services.Posters

	return func() tea.Msg {
		file, err := posters.CachedFile(ctx, posterPath)
		return posterSavedMsg{file: file, err: err}
	}
}

func mediaTypeLabel(mediaType models.MediaType) string {
	if mediaType == models.TVShow {
		return "TV shows"
	}
	return "movies"
}

func isTUIDebugEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("GMB_TUI_DEBUG"))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
