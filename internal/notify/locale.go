package notify

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	keyInviteSubject = "Confirm your attendance on the trip to %s on %s"
	keyInviteIntro   = "You have been invited to join a trip to %s from %s to %s."
	keyInviteAction  = "To confirm your attendance on the trip, click the link below:"
	keyInviteLabel   = "Confirm attendance"

	keyOwnerSubject = "Confirm your trip to %s on %s"
	keyOwnerIntro   = "You requested the creation of a trip to %s from %s to %s."
	keyOwnerAction  = "To confirm your trip, click the link below:"
	keyOwnerLabel   = "Confirm trip"

	keyIgnore = "If you don't know what this email is about, just ignore it."
)

var supportedLocales = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var localeMatcher = language.NewMatcher(supportedLocales)

var messages = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, key, msg string) {
		if err := b.SetString(tag, key, msg); err != nil {
			panic(fmt.Sprintf("notify: catalog %s %q: %v", tag, key, err))
		}
	}

	for _, key := range []string{
		keyInviteSubject, keyInviteIntro, keyInviteAction, keyInviteLabel,
		keyOwnerSubject, keyOwnerIntro, keyOwnerAction, keyOwnerLabel,
		keyIgnore,
	} {
		set(language.English, key, key)
	}

	pt := language.BrazilianPortuguese
	set(pt, keyInviteSubject, "Confirme sua presença na viagem para %s em %s")
	set(pt, keyInviteIntro, "Você foi convidado(a) para participar de uma viagem para %s nas datas de %s até %s.")
	set(pt, keyInviteAction, "Para confirmar sua presença na viagem, clique no link abaixo:")
	set(pt, keyInviteLabel, "Confirmar presença")
	set(pt, keyOwnerSubject, "Confirme sua viagem para %s em %s")
	set(pt, keyOwnerIntro, "Você solicitou a criação de uma viagem para %s nas datas de %s até %s.")
	set(pt, keyOwnerAction, "Para confirmar sua viagem, clique no link abaixo:")
	set(pt, keyOwnerLabel, "Confirmar viagem")
	set(pt, keyIgnore, "Caso você não saiba do que se trata esse e-mail, apenas ignore esse e-mail.")
	return b
}()

// locale bundles the printer and long-date layout for one supported language.
type locale struct {
	tag     language.Tag
	printer *message.Printer
}

func newLocale(requested language.Tag) locale {
	_, idx, _ := localeMatcher.Match(requested)
	tag := supportedLocales[idx]
	return locale{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

func (l locale) sprintf(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

var ptMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// longDate renders day, month name and year: "June 1, 2024" in English,
// "1 de junho de 2024" in Portuguese.
func (l locale) longDate(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	if l.tag == language.BrazilianPortuguese {
		return fmt.Sprintf("%d de %s de %d", t.Day(), ptMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}
