package domain

// Section - раздел одностраничного сайта
type Section string

const (
	SectionHome            Section = "home"
	SectionCatalog         Section = "catalog"
	SectionNewDevelopments Section = "new-developments"
	SectionServices        Section = "services"
	SectionAbout           Section = "about"
	SectionContacts        Section = "contacts"
)

var sectionsOrder = []DictionaryItem{
	{SystemName: string(SectionHome), DisplayName: "Главная"},
	{SystemName: string(SectionCatalog), DisplayName: "Каталог"},
	{SystemName: string(SectionNewDevelopments), DisplayName: "Новостройки"},
	{SystemName: string(SectionServices), DisplayName: "Услуги"},
	{SystemName: string(SectionAbout), DisplayName: "Обо мне"},
	{SystemName: string(SectionContacts), DisplayName: "Контакты"},
}

// Sections возвращает разделы в порядке навигации
func Sections() []DictionaryItem {
	out := make([]DictionaryItem, len(sectionsOrder))
	copy(out, sectionsOrder)
	return out
}

// ParseSection разбирает имя раздела; неизвестное имя ведет на главную
func ParseSection(name string) Section {
	for _, s := range sectionsOrder {
		if s.SystemName == name {
			return Section(name)
		}
	}
	return SectionHome
}
