package export

// LatexTemplate describes one entry of the selectable template catalog.
type LatexTemplate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SourceFile    string `json:"sourceFile"`
	DocumentClass string `json:"documentClass"`
}

// latexCatalog is the static template catalog, in selection-UI order.
var latexCatalog = []LatexTemplate{
	{ID: "classic", Name: "Classic", Description: "Traditional, linear resume template", SourceFile: "classic-resume.tex", DocumentClass: "article"},
	{ID: "modern", Name: "Modern CV", Description: "Clean, professional template with classic styling", SourceFile: "modern-resume.tex", DocumentClass: "moderncv"},
	{ID: "altacv", Name: "AltaCV", Description: "Modern template with color accents and sidebars", SourceFile: "altacv-resume.tex", DocumentClass: "altacv"},
	{ID: "clean", Name: "Clean Resume", Description: "Minimalist design with custom formatting", SourceFile: "clean-resume.tex", DocumentClass: "article"},
	{ID: "professional", Name: "Professional", Description: "Compact, dense layout for experienced professionals", SourceFile: "professional-resume.tex", DocumentClass: "article"},
}

// LatexTemplates returns the selectable template catalog.
func LatexTemplates() []LatexTemplate {
	out := make([]LatexTemplate, len(latexCatalog))
	copy(out, latexCatalog)
	return out
}

// latexBodies holds the template sources keyed by source file name.
// Placeholders use the <<TOKEN>> convention; <<STYLE_BLOCK>> is reserved
// for the injected style fragment so style changes never touch these
// bodies.
var latexBodies = map[string]string{
	"classic-resume.tex": `\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[margin=1in]{geometry}
\usepackage{hyperref}
\usepackage{enumitem}

% dynamic style overrides
<<STYLE_BLOCK>>

\pagestyle{empty}

\begin{document}

\begin{center}
    {\Huge \textbf{<<NAME>>}} \\[0.5em]
    <<TITLE>> \\[0.5em]
    <<EMAIL>> | <<PHONE>> | <<LOCATION>> \\
    \href{https://<<LINKEDIN>>}{LinkedIn} | \href{https://<<GITHUB>>}{GitHub}
\end{center}

\section*{Summary}
<<SUMMARY>>

\section*{Skills}
\textbf{Languages:} <<LANGUAGES>> \\
\textbf{Frameworks:} <<FRAMEWORKS>> \\
\textbf{Tools:} <<TOOLS>>

\section*{Experience}
<<EXPERIENCE>>

\section*{Education}
<<EDUCATION>>

\section*{Projects}
<<PROJECTS>>

\end{document}`,

	"modern-resume.tex": `\documentclass[11pt,a4paper,sans]{moderncv}

% modern themes
\moderncvstyle{classic}
\moderncvcolor{blue}

% character encoding
\usepackage[utf8]{inputenc}

% adjust the page margins
\usepackage[scale=0.85]{geometry}

% dynamic style overrides
<<STYLE_BLOCK>>

% personal data
\name{<<NAME>>}
\title{<<TITLE>>}
\address{<<ADDRESS>>}
\phone[mobile]{<<PHONE>>}
\email{<<EMAIL>>}
\social[linkedin]{<<LINKEDIN>>}
\social[github]{<<GITHUB>>}

\begin{document}

% make the title
\makecvtitle

% objective/summary
\section{Summary}
\cvitem{}{<<SUMMARY>>}

% skills
\section{Technical Skills}
\cvitem{Languages}{<<LANGUAGES>>}
\cvitem{Frameworks \& Libraries}{<<FRAMEWORKS>>}
\cvitem{Tools \& Technologies}{<<TOOLS>>}

% experience
\section{Professional Experience}
<<EXPERIENCE>>

% education
\section{Education}
<<EDUCATION>>

% projects
\section{Projects}
<<PROJECTS>>

\end{document}`,

	"altacv-resume.tex": `\documentclass[10pt,a4paper,ragged2e,withhyper]{altacv}

% Change the page layout if you need to
\geometry{left=1.25cm,right=1.25cm,top=1.5cm,bottom=1.5cm,columnsep=1.2cm}

% The paracol package lets you typeset columns of text in parallel or side-by-side
\usepackage{paracol}

% dynamic style overrides
<<STYLE_BLOCK>>

% Change the font if you want to
\renewcommand{\familydefault}{\sfdefault}

% Change the colours if you want to
\definecolor{SlateGrey}{HTML}{2E2E2E}
\definecolor{LightGrey}{HTML}{666666}
\definecolor{DarkPastelRed}{HTML}{450808}
\definecolor{PastelRed}{HTML}{8F0000}
\definecolor{Goldenrod}{HTML}{DAA520}
\definecolor{DarkGoldenrod}{HTML}{B8860B}
\colorlet{name}{black}
\colorlet{tagline}{PastelRed}
\colorlet{heading}{DarkPastelRed}
\colorlet{headingrule}{Goldenrod}
\colorlet{personalinfo}{SlateGrey}
\colorlet{secondaryheading}{SlateGrey}
\colorlet{accent}{PastelRed}
\colorlet{emphasis}{SlateGrey}
\colorlet{body}{LightGrey}

% Change some fonts, if necessary
\renewcommand{\namefont}{\Huge\rmfamily\bfseries}
\renewcommand{\personalinfofont}{\footnotesize}
\renewcommand{\cvsectionfont}{\LARGE\rmfamily\slshape}
\renewcommand{\cvsubsectionfont}{\large\bfseries}

% Change the bullets for itemize and rating marker
\renewcommand{\itemmarker}{{\small\textbullet}}
\renewcommand{\ratingmarker}{\faCircle}

\begin{document}

\name{<<NAME>>}
\tagline{<<TITLE>>}

\personalinfo{%
  \email{<<EMAIL>>}
  \phone{<<PHONE>>}
  \location{<<LOCATION>>}
  \linkedin{<<LINKEDIN>>}
  \github{<<GITHUB>>}
}

\makecvheader

\cvsection{Summary}
<<SUMMARY>>

\cvsection{Technical Skills}
\cvskill{Languages}{<<LANGUAGES>>}
\cvskill{Frameworks \& Libraries}{<<FRAMEWORKS>>}
\cvskill{Tools \& Technologies}{<<TOOLS>>}

\cvsection{Professional Experience}
<<EXPERIENCE>>

\cvsection{Education}
<<EDUCATION>>

\cvsection{Projects}
<<PROJECTS>>

\end{document}`,

	"clean-resume.tex": `\documentclass[11pt,a4paper]{article}

% Packages
\usepackage[utf8]{inputenc}
\usepackage[margin=0.75in]{geometry}
\usepackage{titlesec}
\usepackage{enumitem}
\usepackage{hyperref}
\usepackage{xcolor}
\usepackage{fontawesome}

% dynamic style overrides
<<STYLE_BLOCK>>

% Custom colors
\definecolor{primary}{RGB}{0,102,204}
\definecolor{secondary}{RGB}{102,102,102}

% Remove page numbers
\pagestyle{empty}

% Custom section formatting
\titleformat{\section}{\large\bfseries\color{primary}}{}{0em}{}[\titlerule]
\titleformat{\subsection}{\normalsize\bfseries}{}{0em}{}
\titleformat{\subsubsection}{\small\bfseries\color{secondary}}{}{0em}{}

% Custom spacing
\titlespacing*{\section}{0pt}{12pt}{6pt}
\titlespacing*{\subsection}{0pt}{8pt}{4pt}
\titlespacing*{\subsubsection}{0pt}{6pt}{3pt}

% Custom list formatting
\setlist[itemize]{leftmargin=*,topsep=0pt,itemsep=0pt,parsep=0pt}

\begin{document}

% Header
\begin{center}
    {\Huge\bfseries\color{primary}<<NAME>>}\\[0.5em]
    {\large\color{secondary}<<TITLE>>}\\[0.5em]
    \faPhone\ <<PHONE>> \quad
    \faEnvelope\ \href{mailto:<<EMAIL>>}{<<EMAIL>>} \quad
    \faLinkedin\ \href{https://linkedin.com/in/<<LINKEDIN>>}{<<LINKEDIN>>} \quad
    \faGithub\ \href{https://github.com/<<GITHUB>>}{<<GITHUB>>}
\end{center}

\vspace{0.5em}

% Summary
\section{Summary}
<<SUMMARY>>

% Skills
\section{Technical Skills}
\textbf{Languages:} <<LANGUAGES>>\\[0.3em]
\textbf{Frameworks \& Libraries:} <<FRAMEWORKS>>\\[0.3em]
\textbf{Tools \& Technologies:} <<TOOLS>>

% Experience
\section{Professional Experience}
<<EXPERIENCE>>

% Education
\section{Education}
<<EDUCATION>>

% Projects
\section{Projects}
<<PROJECTS>>

\end{document}`,

	"professional-resume.tex": `\documentclass[10pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[margin=0.5in]{geometry}
\usepackage{titlesec}
\usepackage{enumitem}
\usepackage{hyperref}

% dynamic style overrides
<<STYLE_BLOCK>>

\pagestyle{empty}

\titleformat{\section}{\large\bfseries\uppercase}{}{0em}{}[\titlerule]
\titlespacing*{\section}{0pt}{10pt}{5pt}

\begin{document}

\begin{center}
    {\LARGE \textbf{<<NAME>>}} \\
    <<TITLE>> \\
    <<EMAIL>> | <<PHONE>> | <<LOCATION>> \\
    LinkedIn: <<LINKEDIN>> | GitHub: <<GITHUB>>
\end{center}

\section{Summary}
<<SUMMARY>>

\section{Technical Skills}
\begin{itemize}[leftmargin=*]
    \item \textbf{Languages:} <<LANGUAGES>>
    \item \textbf{Frameworks:} <<FRAMEWORKS>>
    \item \textbf{Tools:} <<TOOLS>>
\end{itemize}

\section{Experience}
<<EXPERIENCE>>

\section{Education}
<<EDUCATION>>

\section{Projects}
<<PROJECTS>>

\end{document}`,
}
