package scraper

// Site define a interface para os sites de ofertas suportados
type Site interface {
	Name() string
	CanHandle(url string) bool
	Selectors() Selectors
}

// Registry mantém um registro de todos os sites disponíveis
type Registry struct {
	sites []Site
}

// NewRegistry cria um novo registro de sites
func NewRegistry() *Registry {
	return &Registry{
		sites: []Site{
			NewMercadoLivre(),
		},
	}
}

// Register adiciona um site ao registro; sites registrados antes têm prioridade
func (r *Registry) Register(site Site) {
	r.sites = append(r.sites, site)
}

// FindSite encontra o site apropriado para uma URL
func (r *Registry) FindSite(url string) Site {
	for _, site := range r.sites {
		if site.CanHandle(url) {
			return site
		}
	}
	return nil
}
