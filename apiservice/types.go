package apiservice

type APIRespond struct {
	Result interface{}
	Error  *string
}

type APIHealthRespond struct {
	Status  string `json:"status"`
	Mongo   string `json:"mongo"`
	Version string `json:"version"`
}
