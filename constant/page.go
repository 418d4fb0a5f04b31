package constant

// Page is the top-level view selected by the router.
type Page string

const (
	PageHome       Page = "home"
	PageMenu       Page = "menu"
	PageAdminLogin Page = "admin-login"
	PageAdmin      Page = "admin"
)

var Pages = []Page{PageHome, PageMenu, PageAdminLogin, PageAdmin}

const (
	StoreName    = "Pempek Domino"
	StoreTagline = "Fresh & Tasty Every Day!"
)

// Notice kinds shown to the user after an action.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)
