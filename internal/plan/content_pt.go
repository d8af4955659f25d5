package plan

import "fmt"

func init() {
	registerTitles(LocalePT, map[Topic]string{
		TopicProcess:            "Processo Seletivo",
		TopicQuestions:          "Perguntas Prováveis",
		TopicQuestionsToAsk:     "Perguntas para Fazer ao Entrevistador",
		TopicStudyMaterials:     "Materiais de Estudo",
		TopicFinalTips:          "Dicas Finais",
		TopicScheduleImmediate:  "Cronograma de Preparação",
		TopicScheduleShort:      "Cronograma de Preparação",
		TopicScheduleWeek:       "Cronograma de Preparação",
		TopicScheduleLong:       "Cronograma de Preparação",
		"industry.technology":   "Foco no Setor: Tecnologia",
		"industry.finance":      "Foco no Setor: Finanças",
		"industry.healthcare":   "Foco no Setor: Saúde",
		"industry.retail":       "Foco no Setor: Varejo",
		"industry.education":    "Foco no Setor: Educação",
		"industry.default":      "Foco no Setor",
		"type.technical":        "Formato da Entrevista: Técnica",
		"type.behavioral":       "Formato da Entrevista: Comportamental",
		"type.strategic":        "Formato da Entrevista: Estratégica",
		"type.cultural":         "Formato da Entrevista: Cultural",
		"type.default":          "Formato da Entrevista",
		TopicPremiumQuestions:   "Banco de Perguntas Aprofundado",
		TopicPremiumSimulation:  "Roteiro de Simulação de Entrevista",
		TopicPremiumNegotiation: "Guia de Negociação de Proposta",
		TopicPremiumMatrix:      "Matriz de Competências",
	})

	register(TopicProcess, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Como costuma funcionar o processo na %s:**
- Triagem de currículos seguida de conversa com o time de recrutamento.
- Uma ou duas entrevistas com a liderança responsável pela vaga de %s.
- Etapa prática ou situacional alinhada ao cargo.
- Conversa final sobre proposta, remuneração e data de início.
- Confirme cada etapa por escrito e mantenha sua agenda atualizada.`, c.CompanyName, c.JobTitle)
	})

	register(TopicQuestions, LocalePT, RoleTechnical, func(c Context) string {
		return fmt.Sprintf(`**Perguntas prováveis para %s:**
- Conte sobre um projeto recente: arquitetura, trade-offs e seu papel exato.
- Como você garante qualidade? Testes, revisão de código, observabilidade.
- Descreva um incidente em produção que você conduziu e o que mudou depois.
- Por que a %s, e o que você gostaria de construir nos primeiros seis meses?
- Espere uma etapa prática: código ao vivo, system design ou desafio técnico.`, c.JobTitle, c.CompanyName)
	})
	register(TopicQuestions, LocalePT, RoleManagerial, func(c Context) string {
		return fmt.Sprintf(`**Perguntas prováveis para %s:**
- Como você estrutura e desenvolve um time? Contratação, rituais, carreira.
- Conte um conflito entre pessoas do seu time e como você o resolveu.
- Como equilibra pressão de entrega com dívida técnica ou de qualidade?
- Quais métricas usa para saber que o time está saudável e produtivo?
- Por que a %s, e o que mudaria nos seus primeiros noventa dias?`, c.JobTitle, c.CompanyName)
	})
	register(TopicQuestions, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Perguntas prováveis para %s:**
- Fale sobre você e por que esta vaga na %s te interessa.
- Descreva um resultado do qual se orgulha e os obstáculos superados.
- Como você organiza o trabalho quando as prioridades mudam rápido?
- Conte um erro que cometeu e o que aprendeu com ele.
- Onde você quer estar profissionalmente em três anos?`, c.JobTitle, c.CompanyName)
	})

	register(TopicQuestionsToAsk, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Boas perguntas para fazer na %s:**
- O que é sucesso nesta função nos primeiros seis meses?
- Como o time é estruturado e com quem eu trabalharia mais de perto?
- Quais são os maiores desafios do time neste momento?
- Como a %s apoia aprendizado e crescimento de carreira?
- Quais são os próximos passos do processo e o prazo esperado?`, c.CompanyName, c.CompanyName)
	})

	register(TopicStudyMaterials, LocalePT, RoleTechnical, func(c Context) string {
		return fmt.Sprintf(`**O que revisar antes da entrevista:**
- A stack citada na descrição da vaga de %s, na prática se possível.
- Fundamentos de estruturas de dados, algoritmos e system design.
- Seus projetos recentes: esteja pronto para defender cada decisão.
- Blog de engenharia, repositórios públicos e lançamentos recentes da %s.
- Treine explicar decisões técnicas em voz alta, em linguagem simples.`, c.JobTitle, c.CompanyName)
	})
	register(TopicStudyMaterials, LocalePT, RoleManagerial, func(c Context) string {
		return fmt.Sprintf(`**O que revisar antes da entrevista:**
- Estrutura organizacional, princípios de liderança e cultura da %s.
- Frameworks que você realmente usa: one-on-ones, feedback, priorização.
- Histórias com números: crescimento de time, melhoria de entrega, retenção.
- Notícias recentes sobre a %s, seu mercado e principais concorrentes.
- Prepare duas ou três situações de liderança no formato STAR.`, c.CompanyName, c.CompanyName)
	})
	register(TopicStudyMaterials, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**O que revisar antes da entrevista:**
- A descrição completa da vaga de %s; conecte cada requisito à sua experiência.
- Site, missão, produtos e anúncios mais recentes da %s.
- Seu currículo: esteja pronto para detalhar cada linha sem hesitar.
- Perguntas comportamentais comuns, respondidas no formato STAR.
- Notícias sobre o setor em que a %s atua.`, c.JobTitle, c.CompanyName, c.CompanyName)
	})

	register(TopicFinalTips, LocalePT, RoleGeneral, func(c Context) string {
		s := fmt.Sprintf(`**No dia:**
- Chegue cedo, ou teste link, câmera e microfone se for remoto.
- Leve exemplos concretos; números convencem mais que adjetivos.
- Escute a pergunta inteira antes de responder e peça esclarecimento se precisar.
- Encerre reafirmando seu interesse na %s e perguntando sobre os próximos passos.
- Envie um agradecimento curto em até um dia.`, c.CompanyName)
		if c.PracticePoints != "" {
			s += fmt.Sprintf("\n- Atenção extra aos pontos que você indicou: %s.", c.PracticePoints)
		}
		if c.PersonalContext != "" {
			s += fmt.Sprintf("\n- Leve em conta o seu contexto: %s.", c.PersonalContext)
		}
		return s
	})

	register(TopicScheduleImmediate, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Sua entrevista na %s é iminente — só o essencial:**
- Releia a descrição da vaga e suas três histórias mais fortes.
- Faça um ensaio em voz alta da sua apresentação; nada de conteúdo novo hoje.
- Separe roupa, documentos, trajeto ou link de vídeo ainda hoje.
- Durma bem; descanso vale mais que uma hora extra de estudo.`, c.CompanyName)
	})
	register(TopicScheduleShort, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Faltam %d dia(s) — sprint focado:**
- Planeje de trás para frente: o último dia é só revisão, sem temas novos.
- Uma entrevista simulada com alguém de confiança, em voz alta e cronometrada.
- Mergulhe na %s: produto, notícias recentes, o time que você integraria.
- Refine as respostas às perguntas listadas acima.`, c.DaysUntil, c.CompanyName)
	})
	register(TopicScheduleWeek, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Faltam %d dias — plano de uma semana:**
- Dias 1–2: pesquise a %s e conecte os requisitos da vaga à sua experiência.
- Dias 3–4: prepare e ensaie suas histórias principais no formato STAR.
- Dias 5–6: entrevista simulada e treino direcionado nos pontos fracos.
- Último dia: revisão leve, logística e dormir cedo.`, c.DaysUntil, c.CompanyName)
	})
	register(TopicScheduleLong, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Faltam %d dias — preparação de longo prazo:**
- Semana 1: pesquise a %s a fundo e feche lacunas de conhecimento da vaga.
- Depois, duas ou três sessões de treino por semana, alternando temas.
- Agende pelo menos duas simulações completas antes da última semana.
- Reserve os dois últimos dias apenas para revisão e logística.`, c.DaysUntil, c.CompanyName)
	})

	registerIndustryPT()
	registerInterviewTypePT()
	registerPremiumPT()
}

func registerIndustryPT() {
	register("industry.technology", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabalhar com tecnologia na %s:**
- Espere perguntas sobre entregar rápido sem sacrificar qualidade.
- Conheça o produto, seus usuários e o cenário competitivo.
- Mostre conforto com iteração: experimentos, métricas, post-mortems.`, c.CompanyName)
	})
	register("industry.finance", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabalhar com finanças na %s:**
- Regulação e risco aparecem o tempo todo; mostre que respeita ambos.
- Precisão importa: confira duas vezes qualquer número que citar.
- Estude noções de compliance relevantes ao mercado da %s.`, c.CompanyName, c.CompanyName)
	})
	register("industry.healthcare", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabalhar com saúde na %s:**
- Impacto no paciente e privacidade de dados são os temas para ancorar respostas.
- Espere perguntas sobre trabalhar sob processos rígidos e auditáveis.
- Empatia é avaliada com o mesmo peso que competência.`, c.CompanyName)
	})
	register("industry.retail", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabalhar com varejo na %s:**
- Tudo volta ao cliente: construa respostas a partir da experiência dele.
- Sazonalidade e preparo para picos são temas favoritos de entrevista.
- Conheça os canais, lojas ou posição de marketplace da %s.`, c.CompanyName, c.CompanyName)
	})
	register("industry.education", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabalhar com educação na %s:**
- Resultado de aprendizagem é a bússola; ligue suas histórias de impacto a ele.
- Espere perguntas sobre atender perfis de usuário muito diferentes com paciência.
- Demonstre interesse genuíno na abordagem pedagógica da %s.`, c.CompanyName, c.CompanyName)
	})
	register("industry.default", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Entendendo o setor da %s:**
- Pesquise os principais players, tendências e pressões desse mercado.
- Prepare uma observação bem informada sobre para onde o setor caminha.
- Conecte sua experiência aos problemas específicos que a %s resolve.`, c.CompanyName, c.CompanyName)
	})
}

func registerInterviewTypePT() {
	register("type.technical", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparação para entrevista técnica:**
- Treine resolver problemas em voz alta; o raciocínio é o que está sendo avaliado.
- Esclareça os requisitos antes de codar e declare suas premissas.
- Não saber algo é aceitável — mostre como você descobriria.
- Revise os fundamentos por trás da vaga de %s, não apenas ferramentas.`, c.JobTitle)
	})
	register("type.behavioral", LocalePT, RoleGeneral, func(c Context) string {
		return `**Preparação para entrevista comportamental:**
- Prepare de seis a oito histórias no formato STAR cobrindo competências diferentes.
- Toda história precisa de um resultado mensurável e de um aprendizado.
- Evite "nós" sem "eu": o entrevistador precisa enxergar a sua contribuição.
- Seja honesto sobre falhas; perfeição ensaiada soa como evasiva.`
	})
	register("type.strategic", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparação para entrevista estratégica:**
- Construa uma visão sobre a posição de mercado e as grandes apostas da %s.
- Treine estruturar problemas ambíguos antes de propor respostas.
- Leve uma ideia concreta que exploraria na função, com prós e contras.
- Espere contestação do seu raciocínio; defenda com calma e revise sem apego.`, c.CompanyName)
	})
	register("type.cultural", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparação para entrevista de cultura:**
- Leia tudo que a %s publica sobre valores e jeito de trabalhar.
- Prepare exemplos reais de valores parecidos em ação, não declarações de afinidade.
- Tenha uma resposta honesta sobre o tipo de ambiente em que você NÃO rende.
- Pergunte como os valores aparecem no dia a dia; isso sinaliza seriedade.`, c.CompanyName)
	})
	register("type.default", LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparação para esta etapa:**
- Pergunte ao recrutador qual formato esperar e quem estará presente.
- Preparação padrão: sua trajetória, a vaga de %s e a própria %s.
- Prepare perguntas para o final; um "não tenho perguntas" desperdiça a vaga de fala.`, c.JobTitle, c.CompanyName)
	})
}

func registerPremiumPT() {
	register(TopicPremiumQuestions, LocalePT, RoleTechnical, func(c Context) string {
		return fmt.Sprintf(`**Banco estendido de perguntas para %s:**
- Desenhe um sistema para um caso de uso central da %s; defenda capacidade e falhas.
- O que você refatoraria primeiro em um legado, e como reduz o risco disso?
- Como avalia construir versus comprar um componente crítico?
- Descreva seu processo de depuração para uma falha intermitente em produção.
- Um colega sobe código sem testes sob pressão de prazo — o que você faz?
- Como você se mantém atualizado sem se afogar em novidade?`, c.JobTitle, c.CompanyName)
	})
	register(TopicPremiumQuestions, LocalePT, RoleManagerial, func(c Context) string {
		return fmt.Sprintf(`**Banco estendido de perguntas para %s:**
- Detalhe uma reorganização que você conduziu: motivo, execução, consequências.
- Como lida com alguém de alta performance que mina o moral do time?
- Seu time erra feio o trimestre — reconstrua sua comunicação para cima.
- Como decide o que delegar e o que manter com você?
- Descreva sua régua de contratação e uma vez em que a manteve sob pressão.
- O que seu último time diria ser seu maior defeito como líder?`, c.JobTitle)
	})
	register(TopicPremiumQuestions, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Banco estendido de perguntas para %s:**
- Reconstrua uma decisão difícil tomada com informação incompleta.
- Qual feedback foi mais difícil de ouvir, e o que você mudou?
- Como conquista um colega que discorda da sua abordagem?
- Descreva uma entrega concluída mesmo com recurso cortado no meio.
- O que será mais difícil para você nesta função na %s, honestamente?
- Como é a sua semana de trabalho ideal?`, c.JobTitle, c.CompanyName)
	})

	register(TopicPremiumSimulation, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Rode esta simulação em voz alta, cronometrada (cerca de 30 minutos):**
1. Apresentação de dois minutos: quem você é e por que a %s (ensaie até ficar fluido).
2. Escolha três perguntas das seções acima; responda cada uma em 3–4 minutos.
3. Peça para alguém interromper com "por quê?" pelo menos uma vez por resposta.
4. Feche com suas duas melhores perguntas para o entrevistador.
5. Revise uma gravação: vícios de fala, rodeios, resultados ausentes. Repita uma vez.`, c.CompanyName)
	})
	register(TopicPremiumNegotiation, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Quando a proposta da %s chegar:**
- Nunca aceite na hora; agradeça e peça a proposta por escrito.
- Pesquise a remuneração de mercado para %s na sua região antes de responder.
- Negocie o pacote, não só salário: participação, bônus, flexibilidade, data de início.
- Ancore com uma faixa em que seu alvo é o piso, e justifique com dados.
- Negociação respeitosa não derruba proposta séria; o silêncio custa mais.`, c.CompanyName, c.JobTitle)
	})
	register(TopicPremiumMatrix, LocalePT, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Dê uma nota de 1 a 5 ao que a %s vai avaliar; treine o que ficar abaixo de 4:**
- Conhecimento de domínio para %s.
- Comunicação: respostas claras, estruturadas e honestas.
- Evidência de resultados: números e desfechos, não tarefas.
- Colaboração: histórias envolvendo outras pessoas e outros times.
- Motivação: uma razão específica e crível para querer esta vaga.`, c.CompanyName, c.JobTitle)
	})
}
