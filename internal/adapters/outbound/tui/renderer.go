package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderLabelResult shows the attachments created for a picking.
func RenderLabelResult(res *domain.LabelResult) string {
	var b strings.Builder

	title := headerStyle.Render("Easy Delivery")
	subtitle := dimStyle.Render(res.PickingName)
	count := passStyle.Bold(true).Render(fmt.Sprintf("%d %s label(s) attached", len(res.Attachments), strings.ToUpper(string(res.Kind))))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + count))
	b.WriteString("\n\n")
	renderAttachmentRows(&b, res.Attachments)
	return b.String()
}

// RenderAttachments lists what is attached to a picking.
func RenderAttachments(pickingID int64, attachments []domain.Attachment) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Attachments of picking %d", pickingID)))
	b.WriteString("\n  " + separatorLine + "\n")

	if len(attachments) == 0 {
		b.WriteString("  " + dimStyle.Render("No attachments.") + "\n")
		return b.String()
	}
	renderAttachmentRows(&b, attachments)
	return b.String()
}

// RenderDeliveryTypes lists the selectable delivery types.
func RenderDeliveryTypes(options []domain.DeliveryTypeOption) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Delivery types"))
	b.WriteString("\n  " + separatorLine + "\n")

	for _, o := range options {
		icon := faintStyle.Render("○")
		if o.Value == domain.DeliveryTypeEasyDelivery {
			icon = passStyle.Render("●")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", icon, nameStyle.Render(padRight(string(o.Value), 16)), dimStyle.Render(o.Label))
	}
	return b.String()
}

// RenderCarriers lists carriers with their delivery type and fixed price.
func RenderCarriers(carriers []domain.Carrier) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Carriers"))
	b.WriteString("\n  " + separatorLine + "\n")

	if len(carriers) == 0 {
		b.WriteString("  " + dimStyle.Render("No carriers.") + "\n")
		return b.String()
	}
	for _, c := range carriers {
		icon := faintStyle.Render("○")
		if c.SupportsLabelFetch() {
			icon = passStyle.Render("●")
		}
		fmt.Fprintf(&b, "  %s %s %s  %s\n",
			icon,
			nameStyle.Render(padRight(c.Name, 24)),
			dimStyle.Render(padRight(string(c.DeliveryType), 16)),
			faintStyle.Render(fmt.Sprintf("%.2f", c.FixedPrice)),
		)
	}
	return b.String()
}

// RenderHistory formats the label request history for terminal output.
func RenderHistory(entries []domain.LabelHistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No label history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Label History") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, e := range entries {
		ts := e.Timestamp
		if len(ts) > 19 {
			ts = ts[:19]
		}

		var detail string
		if e.Outcome == domain.OutcomeSuccess {
			detail = passStyle.Render(fmt.Sprintf("%d %s", len(e.Attachments), strings.ToUpper(string(e.Kind))))
		} else {
			detail = failStyle.Render(e.Error)
		}

		fmt.Fprintf(&b, "  %s  %s  %s\n",
			dimStyle.Render(ts),
			nameStyle.Render(padRight(e.PickingName, 16)),
			detail,
		)
	}
	return b.String()
}

// RenderError formats an error for the terminal.
func RenderError(err error) string {
	return "  " + errorTagStyle.Render("error") + " " + failStyle.Render(err.Error()) + "\n"
}

func renderAttachmentRows(b *strings.Builder, attachments []domain.Attachment) {
	for _, a := range attachments {
		fmt.Fprintf(b, "  %s %s %s  %s\n",
			passStyle.Render("●"),
			nameStyle.Render(padRight(a.Name, 28)),
			dimStyle.Render(padRight(a.MimeType, 16)),
			faintStyle.Render(humanize.Bytes(uint64(a.Size))),
		)
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
