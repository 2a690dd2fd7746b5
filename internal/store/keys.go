package store

// Chaves do armazenamento local, uma por store persistido.
const (
	KeySession   = "uturns:session"
	KeyIsLogged  = "uturns:islogged"
	KeyCompany   = "uturns:company"
	KeyMPAccount = "uturns:mp_salesman"
	KeyRemember  = "uturns:remember"
)
