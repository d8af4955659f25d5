package plan

import "fmt"

func init() {
	registerTitles(LocaleES, map[Topic]string{
		TopicProcess:            "Proceso de Selección",
		TopicQuestions:          "Preguntas Probables",
		TopicQuestionsToAsk:     "Preguntas para Hacer al Entrevistador",
		TopicStudyMaterials:     "Materiales de Estudio",
		TopicFinalTips:          "Consejos Finales",
		TopicScheduleImmediate:  "Cronograma de Preparación",
		TopicScheduleShort:      "Cronograma de Preparación",
		TopicScheduleWeek:       "Cronograma de Preparación",
		TopicScheduleLong:       "Cronograma de Preparación",
		"industry.technology":   "Enfoque del Sector: Tecnología",
		"industry.finance":      "Enfoque del Sector: Finanzas",
		"industry.healthcare":   "Enfoque del Sector: Salud",
		"industry.retail":       "Enfoque del Sector: Retail",
		"industry.education":    "Enfoque del Sector: Educación",
		"industry.default":      "Enfoque del Sector",
		"type.technical":        "Formato de la Entrevista: Técnica",
		"type.behavioral":       "Formato de la Entrevista: Conductual",
		"type.strategic":        "Formato de la Entrevista: Estratégica",
		"type.cultural":         "Formato de la Entrevista: Cultural",
		"type.default":          "Formato de la Entrevista",
		TopicPremiumQuestions:   "Banco de Preguntas a Fondo",
		TopicPremiumSimulation:  "Guion de Simulación de Entrevista",
		TopicPremiumNegotiation: "Guía de Negociación de Oferta",
		TopicPremiumMatrix:      "Matriz de Competencias",
	})

	register(TopicProcess, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Cómo suele funcionar el proceso en %s:**
- Filtro de candidaturas seguido de una llamada con reclutamiento.
- Una o dos entrevistas con la persona responsable del puesto de %s.
- Etapa práctica o situacional acorde al cargo.
- Conversación final sobre oferta, compensación y fecha de inicio.
- Confirma cada etapa por escrito y mantén tu agenda al día.`, c.CompanyName, c.JobTitle)
	})

	register(TopicQuestions, LocaleES, RoleTechnical, func(c Context) string {
		return fmt.Sprintf(`**Preguntas probables para %s:**
- Cuéntame un proyecto reciente: arquitectura, decisiones y tu rol exacto.
- ¿Cómo garantizas la calidad? Pruebas, revisión de código, observabilidad.
- Describe un incidente en producción que manejaste y qué cambió después.
- ¿Por qué %s, y qué te gustaría construir en los primeros seis meses?
- Espera una etapa práctica: código en vivo, diseño de sistemas o reto técnico.`, c.JobTitle, c.CompanyName)
	})
	register(TopicQuestions, LocaleES, RoleManagerial, func(c Context) string {
		return fmt.Sprintf(`**Preguntas probables para %s:**
- ¿Cómo estructuras y haces crecer un equipo? Contratación, rituales, carrera.
- Cuéntame un conflicto entre personas de tu equipo y cómo lo resolviste.
- ¿Cómo equilibras la presión de entrega con la deuda técnica o de calidad?
- ¿Qué métricas usas para saber que tu equipo está sano y es productivo?
- ¿Por qué %s, y qué cambiarías en tus primeros noventa días?`, c.JobTitle, c.CompanyName)
	})
	register(TopicQuestions, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preguntas probables para %s:**
- Háblame de ti y de por qué te interesa este puesto en %s.
- Describe un logro del que estés orgulloso y los obstáculos que superaste.
- ¿Cómo organizas tu trabajo cuando las prioridades cambian rápido?
- Cuéntame un error que cometiste y qué aprendiste de él.
- ¿Dónde quieres estar profesionalmente en tres años?`, c.JobTitle, c.CompanyName)
	})

	register(TopicQuestionsToAsk, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Buenas preguntas para hacer en %s:**
- ¿Qué significa tener éxito en este puesto durante los primeros seis meses?
- ¿Cómo está estructurado el equipo y con quién trabajaría más de cerca?
- ¿Cuáles son los mayores desafíos del equipo en este momento?
- ¿Cómo apoya %s el aprendizaje y el crecimiento profesional?
- ¿Cuáles son los próximos pasos del proceso y el plazo esperado?`, c.CompanyName, c.CompanyName)
	})

	register(TopicStudyMaterials, LocaleES, RoleTechnical, func(c Context) string {
		return fmt.Sprintf(`**Qué repasar antes de la entrevista:**
- La tecnología mencionada en la descripción del puesto de %s, en la práctica si puedes.
- Fundamentos de estructuras de datos, algoritmos y diseño de sistemas.
- Tus proyectos recientes: prepárate para defender cada decisión.
- El blog de ingeniería, repositorios públicos y lanzamientos recientes de %s.
- Practica explicar decisiones técnicas en voz alta, con lenguaje sencillo.`, c.JobTitle, c.CompanyName)
	})
	register(TopicStudyMaterials, LocaleES, RoleManagerial, func(c Context) string {
		return fmt.Sprintf(`**Qué repasar antes de la entrevista:**
- Estructura organizativa, principios de liderazgo y cultura de %s.
- Marcos que realmente uses: one-on-ones, feedback, priorización.
- Historias con números: crecimiento del equipo, mejoras de entrega, retención.
- Noticias recientes sobre %s, su mercado y sus principales competidores.
- Prepara dos o tres situaciones de liderazgo en formato STAR.`, c.CompanyName, c.CompanyName)
	})
	register(TopicStudyMaterials, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Qué repasar antes de la entrevista:**
- La descripción completa del puesto de %s; conecta cada requisito con tu experiencia.
- El sitio web, la misión, los productos y los anuncios más recientes de %s.
- Tu currículum: prepárate para ampliar cada línea sin dudar.
- Preguntas conductuales comunes, respondidas en formato STAR.
- Noticias del sector en el que opera %s.`, c.JobTitle, c.CompanyName, c.CompanyName)
	})

	register(TopicFinalTips, LocaleES, RoleGeneral, func(c Context) string {
		s := fmt.Sprintf(`**El día de la entrevista:**
- Llega temprano, o prueba el enlace, la cámara y el micrófono si es remota.
- Lleva ejemplos concretos; los números convencen más que los adjetivos.
- Escucha la pregunta completa antes de responder y pide aclaración si hace falta.
- Cierra reafirmando tu interés en %s y preguntando por los próximos pasos.
- Envía un agradecimiento breve antes de un día.`, c.CompanyName)
		if c.PracticePoints != "" {
			s += fmt.Sprintf("\n- Atención extra a los puntos que señalaste: %s.", c.PracticePoints)
		}
		if c.PersonalContext != "" {
			s += fmt.Sprintf("\n- Ten presente tu contexto: %s.", c.PersonalContext)
		}
		return s
	})

	register(TopicScheduleImmediate, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Tu entrevista en %s es inminente — solo lo esencial:**
- Relee la descripción del puesto y tus tres historias más fuertes.
- Haz un ensayo en voz alta de tu presentación; nada de material nuevo hoy.
- Prepara ropa, documentos, trayecto o enlace de video esta misma noche.
- Duerme bien; descansar vale más que una hora extra de estudio.`, c.CompanyName)
	})
	register(TopicScheduleShort, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Faltan %d día(s) — sprint enfocado:**
- Planifica hacia atrás: el último día es solo repaso, sin temas nuevos.
- Una entrevista simulada con alguien de confianza, en voz alta y cronometrada.
- Sumérgete en %s: producto, noticias recientes, el equipo al que te unirías.
- Pule las respuestas a las preguntas listadas arriba.`, c.DaysUntil, c.CompanyName)
	})
	register(TopicScheduleWeek, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Faltan %d días — plan de una semana:**
- Días 1–2: investiga %s y conecta los requisitos del puesto con tu experiencia.
- Días 3–4: prepara y ensaya tus historias principales en formato STAR.
- Días 5–6: entrevista simulada y práctica dirigida a tus puntos débiles.
- Último día: repaso ligero, logística y acostarse temprano.`, c.DaysUntil, c.CompanyName)
	})
	register(TopicScheduleLong, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Faltan %d días — preparación de largo plazo:**
- Semana 1: investiga %s a fondo y cierra las lagunas de conocimiento del puesto.
- Después, dos o tres sesiones de práctica por semana, alternando temas.
- Agenda al menos dos simulaciones completas antes de la última semana.
- Reserva los dos últimos días solo para repaso y logística.`, c.DaysUntil, c.CompanyName)
	})

	registerIndustryES()
	registerInterviewTypeES()
	registerPremiumES()
}

func registerIndustryES() {
	register("industry.technology", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabajar en tecnología en %s:**
- Espera preguntas sobre entregar rápido sin sacrificar calidad.
- Conoce el producto, sus usuarios y el panorama competitivo.
- Muestra comodidad con la iteración: experimentos, métricas, post-mortems.`, c.CompanyName)
	})
	register("industry.finance", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabajar en finanzas en %s:**
- La regulación y el riesgo aparecen constantemente; muestra respeto por ambos.
- La precisión importa: verifica dos veces cualquier número que cites.
- Estudia nociones de cumplimiento relevantes para el mercado de %s.`, c.CompanyName, c.CompanyName)
	})
	register("industry.healthcare", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabajar en salud en %s:**
- El impacto en el paciente y la privacidad de datos son los temas ancla.
- Espera preguntas sobre trabajar bajo procesos estrictos y auditables.
- La empatía se evalúa con el mismo peso que la competencia.`, c.CompanyName)
	})
	register("industry.retail", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabajar en retail en %s:**
- Todo vuelve al cliente: construye tus respuestas desde su experiencia.
- La estacionalidad y la preparación para picos son temas favoritos.
- Conoce los canales, tiendas o posición de marketplace de %s.`, c.CompanyName, c.CompanyName)
	})
	register("industry.education", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Trabajar en educación en %s:**
- El resultado de aprendizaje es la brújula; conecta tus historias de impacto con él.
- Espera preguntas sobre atender con paciencia perfiles de usuario muy distintos.
- Demuestra interés genuino en el enfoque pedagógico de %s.`, c.CompanyName, c.CompanyName)
	})
	register("industry.default", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Entendiendo el sector de %s:**
- Investiga los principales actores, tendencias y presiones de este mercado.
- Prepara una observación bien fundamentada sobre hacia dónde va el sector.
- Conecta tu experiencia con los problemas específicos que resuelve %s.`, c.CompanyName, c.CompanyName)
	})
}

func registerInterviewTypeES() {
	register("type.technical", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparación para una entrevista técnica:**
- Practica resolver problemas en voz alta; lo que se evalúa es el razonamiento.
- Aclara los requisitos antes de programar y declara tus supuestos.
- No saber algo es aceptable — muestra cómo lo averiguarías.
- Repasa los fundamentos detrás del puesto de %s, no solo herramientas.`, c.JobTitle)
	})
	register("type.behavioral", LocaleES, RoleGeneral, func(c Context) string {
		return `**Preparación para una entrevista conductual:**
- Prepara de seis a ocho historias en formato STAR que cubran competencias distintas.
- Cada historia necesita un resultado medible y una lección aprendida.
- Evita el "nosotros" sin el "yo": deben ver tu contribución.
- Sé honesto con los fracasos; la perfección ensayada suena a evasiva.`
	})
	register("type.strategic", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparación para una entrevista estratégica:**
- Forma una opinión sobre la posición de mercado y las grandes apuestas de %s.
- Practica estructurar problemas ambiguos antes de proponer respuestas.
- Lleva una idea concreta que explorarías en el puesto, con pros y contras.
- Espera que cuestionen tu razonamiento; defiéndelo con calma y revísalo sin apego.`, c.CompanyName)
	})
	register("type.cultural", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparación para una entrevista de cultura:**
- Lee todo lo que %s publica sobre valores y forma de trabajar.
- Prepara ejemplos reales de valores parecidos en acción, no declaraciones de afinidad.
- Ten una respuesta honesta sobre el entorno en el que NO rindes bien.
- Pregunta cómo se ven los valores en el día a día; eso señala seriedad.`, c.CompanyName)
	})
	register("type.default", LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Preparación para esta etapa:**
- Pregunta al reclutador qué formato esperar y quién estará presente.
- Preparación básica: tu trayectoria, el puesto de %s y la propia %s.
- Prepara preguntas para el final; un "no tengo preguntas" desperdicia el turno.`, c.JobTitle, c.CompanyName)
	})
}

func registerPremiumES() {
	register(TopicPremiumQuestions, LocaleES, RoleTechnical, func(c Context) string {
		return fmt.Sprintf(`**Banco extendido de preguntas para %s:**
- Diseña un sistema para un caso de uso central de %s; defiende capacidad y fallos.
- ¿Qué refactorizarías primero en un legado, y cómo reduces ese riesgo?
- ¿Cómo evalúas construir versus comprar un componente crítico?
- Describe tu proceso de depuración para un fallo intermitente en producción.
- Un colega sube código sin pruebas por presión de plazos — ¿qué haces?
- ¿Cómo te mantienes al día sin ahogarte en novedades?`, c.JobTitle, c.CompanyName)
	})
	register(TopicPremiumQuestions, LocaleES, RoleManagerial, func(c Context) string {
		return fmt.Sprintf(`**Banco extendido de preguntas para %s:**
- Detalla una reorganización que lideraste: motivo, ejecución, consecuencias.
- ¿Cómo manejas a alguien de alto rendimiento que daña la moral del equipo?
- Tu equipo falla gravemente un trimestre — reconstruye tu comunicación hacia arriba.
- ¿Cómo decides qué delegar y qué mantener contigo?
- Describe tu estándar de contratación y una vez que lo mantuviste bajo presión.
- ¿Qué diría tu último equipo que es tu mayor defecto como líder?`, c.JobTitle)
	})
	register(TopicPremiumQuestions, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Banco extendido de preguntas para %s:**
- Reconstruye una decisión difícil tomada con información incompleta.
- ¿Qué feedback fue el más difícil de escuchar, y qué cambiaste?
- ¿Cómo ganas a un colega que no está de acuerdo con tu enfoque?
- Describe una entrega completada aunque un recurso se cortara a mitad de camino.
- ¿Qué será lo más difícil para ti en este puesto en %s, honestamente?
- ¿Cómo es tu semana de trabajo ideal?`, c.JobTitle, c.CompanyName)
	})

	register(TopicPremiumSimulation, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Ejecuta esta simulación en voz alta, cronometrada (unos 30 minutos):**
1. Presentación de dos minutos: quién eres y por qué %s (ensaya hasta que fluya).
2. Elige tres preguntas de las secciones anteriores; responde cada una en 3–4 minutos.
3. Pide que alguien te interrumpa con "¿por qué?" al menos una vez por respuesta.
4. Cierra con tus dos mejores preguntas para el entrevistador.
5. Revisa una grabación: muletillas, rodeos, resultados ausentes. Repite una vez.`, c.CompanyName)
	})
	register(TopicPremiumNegotiation, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Cuando llegue la oferta de %s:**
- Nunca aceptes en la llamada; agradece y pide la oferta por escrito.
- Investiga la compensación de mercado para %s en tu región antes de responder.
- Negocia el paquete, no solo el salario: acciones, bono, flexibilidad, fecha de inicio.
- Ancla con un rango donde tu objetivo sea el piso, y justifícalo con datos.
- Una negociación respetuosa no tumba una oferta seria; el silencio cuesta más.`, c.CompanyName, c.JobTitle)
	})
	register(TopicPremiumMatrix, LocaleES, RoleGeneral, func(c Context) string {
		return fmt.Sprintf(`**Puntúate de 1 a 5 en lo que %s va a evaluar; entrena lo que quede bajo 4:**
- Conocimiento de dominio para %s.
- Comunicación: respuestas claras, estructuradas y honestas.
- Evidencia de resultados: números y desenlaces, no tareas.
- Colaboración: historias que involucren a otras personas y otros equipos.
- Motivación: una razón específica y creíble para querer este puesto.`, c.CompanyName, c.JobTitle)
	})
}
