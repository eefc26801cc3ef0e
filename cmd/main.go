package main

import (
	"log"
	"net/http"
	"os"

	"github.com/VetorDados/api-admin/internal/auth"
	"github.com/VetorDados/api-admin/internal/comentario"
	"github.com/VetorDados/api-admin/internal/conteudo"
	"github.com/VetorDados/api-admin/internal/contrato"
	"github.com/VetorDados/api-admin/internal/geracao"
	"github.com/VetorDados/api-admin/internal/impressao"
	"github.com/VetorDados/api-admin/internal/lead"
	"github.com/VetorDados/api-admin/internal/modelo"
	"github.com/VetorDados/api-admin/internal/proposta"
	"github.com/VetorDados/api-admin/internal/relatorio"
	"github.com/VetorDados/api-admin/internal/tarefa"
	"github.com/VetorDados/api-admin/internal/usuario"
	dbutils "github.com/VetorDados/api-admin/internal/utils/db"
	"github.com/VetorDados/api-admin/internal/webhook"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	db, err := dbutils.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := db.AutoMigrate(
		&usuario.Usuario{},
		&lead.Lead{},
		&comentario.Comentario{},
		&tarefa.Tarefa{},
		&proposta.Proposta{},
		&contrato.Contrato{},
		&geracao.DocumentoGerado{},
		&modelo.CampoModelo{},
		&modelo.ModeloDocumento{},
		&webhook.Webhook{},
		&conteudo.BlocoConteudo{},
		&conteudo.Tema{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	webhooks := webhook.NewDispatcher()

	// Destino de impressão opcional (serviço de PDF externo).
	var despachante *impressao.Despachante
	if url := os.Getenv("IMPRESSAO_WEBHOOK_URL"); url != "" {
		despachante = impressao.NovoDespachante(&impressao.DestinoHTTP{URL: url})
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(db)
	leadHandler := lead.NewHandler(db, webhooks)
	comentarioHandler := comentario.NewHandler(db)
	tarefaHandler := tarefa.NewHandler(db, webhooks)
	propostaHandler := proposta.NewHandler(db, webhooks, despachante)
	contratoHandler := contrato.NewHandler(db, webhooks, despachante)
	modeloHandler := modelo.NewHandler(db)
	webhookHandler := webhook.NewHandler(db)
	conteudoHandler := conteudo.NewHandler(db)
	relatorioHandler := relatorio.NewHandler(db)

	// Router
	r := mux.NewRouter()

	// Rotas públicas: login, health e a superfície do site
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
	r.HandleFunc("/site/conteudo", conteudoHandler.ListarPublicados).Methods("GET")
	r.HandleFunc("/site/leads", leadHandler.Criar).Methods("POST") // formulário de contato

	// Rotas autenticadas do painel
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/me", usuarioHandler.Me).Methods("GET")

	// Leads
	api.HandleFunc("/leads", leadHandler.Criar).Methods("POST")
	api.HandleFunc("/leads", leadHandler.Listar).Methods("GET")
	api.HandleFunc("/leads/{id}", leadHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/leads/{id}", leadHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/leads/{id}/status", leadHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/leads/{id}", leadHandler.Deletar).Methods("DELETE")

	// Comentários
	api.HandleFunc("/leads/{id}/comentarios", comentarioHandler.CriarParaLead).Methods("POST")
	api.HandleFunc("/leads/{id}/comentarios", comentarioHandler.ListarPorLead).Methods("GET")
	api.HandleFunc("/comentarios/{id}", comentarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/comentarios/{id}", comentarioHandler.Remover).Methods("DELETE")

	// Tarefas
	api.HandleFunc("/tarefas", tarefaHandler.Criar).Methods("POST")
	api.HandleFunc("/tarefas", tarefaHandler.Listar).Methods("GET")
	api.HandleFunc("/tarefas/{id}", tarefaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/tarefas/{id}", tarefaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/tarefas/{id}/status", tarefaHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/tarefas/{id}", tarefaHandler.Deletar).Methods("DELETE")

	// Propostas
	api.HandleFunc("/leads/{id}/propostas", propostaHandler.CriarParaLead).Methods("POST")
	api.HandleFunc("/propostas", propostaHandler.Listar).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/propostas/{id}/status", propostaHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/propostas/{id}", propostaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/propostas/{id}/documento", propostaHandler.GerarDocumento).Methods("POST")
	api.HandleFunc("/propostas/{id}/geracoes", propostaHandler.ListarGeracoes).Methods("GET")

	// Contratos
	api.HandleFunc("/leads/{id}/contratos", contratoHandler.CriarParaLead).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/documento", contratoHandler.GerarDocumento).Methods("POST")
	api.HandleFunc("/contratos/{id}/geracoes", contratoHandler.ListarGeracoes).Methods("GET")

	// Modelos e campos do editor de templates
	api.HandleFunc("/campos", modeloHandler.CriarCampo).Methods("POST")
	api.HandleFunc("/campos", modeloHandler.ListarCampos).Methods("GET")
	api.HandleFunc("/campos/{id}", modeloHandler.AtualizarCampo).Methods("PUT")
	api.HandleFunc("/campos/{id}", modeloHandler.DeletarCampo).Methods("DELETE")
	api.HandleFunc("/modelos", modeloHandler.CriarModelo).Methods("POST")
	api.HandleFunc("/modelos", modeloHandler.ListarModelos).Methods("GET")
	api.HandleFunc("/modelos/{id}", modeloHandler.BuscarModeloPorID).Methods("GET")
	api.HandleFunc("/modelos/{id}", modeloHandler.AtualizarModelo).Methods("PUT")
	api.HandleFunc("/modelos/{id}", modeloHandler.DeletarModelo).Methods("DELETE")
	api.HandleFunc("/modelos/{id}/preview", modeloHandler.PreviewModelo).Methods("POST")
	api.HandleFunc("/modelos/{id}/campos/{campoId}", modeloHandler.InserirCampoNoModelo).Methods("POST")
	api.HandleFunc("/modelos/{id}/gerar", modeloHandler.GerarModelo).Methods("POST")

	// Conteúdo do site e tema
	api.HandleFunc("/conteudo", conteudoHandler.ListarBlocos).Methods("GET")
	api.HandleFunc("/conteudo", conteudoHandler.SalvarBloco).Methods("PUT")
	api.HandleFunc("/conteudo/{id:[0-9]+}", conteudoHandler.DeletarBloco).Methods("DELETE")
	api.HandleFunc("/conteudo/{chave}", conteudoHandler.BuscarBloco).Methods("GET")
	api.HandleFunc("/tema", conteudoHandler.BuscarTema).Methods("GET")
	api.HandleFunc("/tema", conteudoHandler.SalvarTema).Methods("PUT")

	// Relatórios
	api.HandleFunc("/relatorios/resumo", relatorioHandler.Resumo).Methods("GET")

	// Rotas restritas a admin: gestão de usuários e webhooks
	somenteAdmin := func(h http.HandlerFunc) http.Handler {
		return auth.RequireAdmin(h)
	}
	api.Handle("/usuarios", somenteAdmin(usuarioHandler.CriarUsuario)).Methods("POST")
	api.Handle("/usuarios", somenteAdmin(usuarioHandler.ListarUsuarios)).Methods("GET")
	api.Handle("/usuarios/{id}", somenteAdmin(usuarioHandler.BuscarPorID)).Methods("GET")
	api.Handle("/usuarios/{id}", somenteAdmin(usuarioHandler.AtualizarUsuario)).Methods("PUT")
	api.Handle("/usuarios/{id}", somenteAdmin(usuarioHandler.DeletarUsuario)).Methods("DELETE")

	api.Handle("/webhooks", somenteAdmin(webhookHandler.Criar)).Methods("POST")
	api.Handle("/webhooks", somenteAdmin(webhookHandler.Listar)).Methods("GET")
	api.Handle("/webhooks/{id}", somenteAdmin(webhookHandler.Atualizar)).Methods("PUT")
	api.Handle("/webhooks/{id}", somenteAdmin(webhookHandler.Deletar)).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}
	log.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
